package simulator

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/internal/models"
	"github.com/stitts-dev/cricket-sim/pkg/random"
)

// State is the lifecycle of a simulated innings.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Delivery is the record of one simulated ball.
type Delivery struct {
	Ball    int     `json:"ball"`
	Outcome Outcome `json:"outcome"`
	Score   int     `json:"score"`
	Wickets int     `json:"wickets"`
}

// Snapshot is a point-in-time copy of a match, safe to hand to other goroutines.
type Snapshot struct {
	MatchID      string                `json:"match_id"`
	State        State                 `json:"state"`
	Live         models.LiveMatchState `json:"live"`
	RunRate      float64               `json:"run_rate"`
	OversDisplay string                `json:"overs_display"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// Match owns one simulated innings. All mutation happens under its mutex so
// deliveries apply atomically; Driver makes sure only one clock ticks it.
type Match struct {
	mu        sync.Mutex
	id        string
	state     State
	live      models.LiveMatchState
	src       random.Source
	logger    *logrus.Logger
	updatedAt time.Time
}

func NewMatch(src random.Source, logger *logrus.Logger) *Match {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	m := &Match{
		src:    src,
		logger: logger,
	}
	m.resetLocked()
	return m
}

// Start moves an idle or paused match to running.
func (m *Match) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateIdle, StatePaused:
		m.state = StateRunning
		m.updatedAt = time.Now().UTC()
		m.logger.WithField("match_id", m.id).Info("Live simulation started")
		return nil
	default:
		return &models.StateError{Op: "start", State: string(m.state)}
	}
}

// Pause stops a running match from taking deliveries until started again.
func (m *Match) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateRunning {
		return &models.StateError{Op: "pause", State: string(m.state)}
	}
	m.state = StatePaused
	m.updatedAt = time.Now().UTC()
	m.logger.WithField("match_id", m.id).Info("Live simulation paused")
	return nil
}

// Reset zeroes the innings and returns to idle from any state.
func (m *Match) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
	m.logger.WithField("match_id", m.id).Info("Live simulation reset")
}

// Tick bowls one delivery if the match is running. It reports the delivery
// and whether one was bowled; ticks in any other state change nothing.
func (m *Match) Tick() (Delivery, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateRunning {
		return Delivery{}, false
	}

	outcome := DrawOutcome(m.src)
	over, ballInOver := m.live.Overs, m.live.Balls%6+1

	m.live.Score += outcome.Runs
	if outcome.Kind == OutcomeWicket {
		m.live.Wickets++
	}
	m.live.Balls++

	m.live.Commentary = append(m.live.Commentary, fmt.Sprintf("%d.%d: %s", over, ballInOver, outcome.Text))
	if m.live.Balls%6 == 0 {
		m.live.Overs++
		m.live.Commentary = append(m.live.Commentary,
			fmt.Sprintf("End of Over %d. Score: %d/%d", m.live.Overs, m.live.Score, m.live.Wickets))
	}
	m.live.History = append(m.live.History, models.ScorePoint{Ball: m.live.Balls, Score: m.live.Score})
	m.updatedAt = time.Now().UTC()

	if m.live.Finished() {
		m.state = StateCompleted
		m.logger.WithFields(logrus.Fields{
			"match_id": m.id,
			"score":    m.live.Score,
			"wickets":  m.live.Wickets,
			"overs":    m.live.OversDisplay(),
		}).Info("Live simulation completed")
	}

	return Delivery{
		Ball:    m.live.Balls,
		Outcome: outcome,
		Score:   m.live.Score,
		Wickets: m.live.Wickets,
	}, true
}

func (m *Match) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.live
	live.Commentary = append([]string(nil), m.live.Commentary...)
	live.History = append([]models.ScorePoint(nil), m.live.History...)

	return Snapshot{
		MatchID:      m.id,
		State:        m.state,
		Live:         live,
		RunRate:      live.RunRate(),
		OversDisplay: live.OversDisplay(),
		UpdatedAt:    m.updatedAt,
	}
}

func (m *Match) resetLocked() {
	m.id = uuid.NewString()
	m.state = StateIdle
	m.live = models.LiveMatchState{
		Commentary: []string{},
		History:    []models.ScorePoint{},
	}
	m.updatedAt = time.Now().UTC()
}
