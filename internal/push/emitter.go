package push

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/cricket-sim/pkg/random"
)

// DefaultInterval is the pace of the demo feed.
const DefaultInterval = 2 * time.Second

// Publisher forwards updates to an external bus.
type Publisher interface {
	Publish(ctx context.Context, update MatchUpdate) error
}

// InitialUpdate is the state the demo feed starts from.
func InitialUpdate(matchID string, now time.Time) MatchUpdate {
	return MatchUpdate{
		MatchID:    matchID,
		Timestamp:  now.UTC(),
		Inning:     1,
		Over:       5,
		BallInOver: 2,
		Score:      Score{Runs: 45, Wickets: 1, Overs: "5.2"},
		Delivery: Delivery{
			BatsmanID:   "b1",
			BowlerID:    "bo1",
			RunsBatsman: 0,
		},
		WinProbability: &WinProbability{TeamA: 0.55, TeamB: 0.45},
		ProjectedScore: 165,
	}
}

// Emitter advances a mock match on a schedule and broadcasts every state on
// the match_update topic. It stands in for a real provider feed.
type Emitter struct {
	hub       Broadcaster
	publisher Publisher
	src       random.Source
	logger    *logrus.Logger
	interval  time.Duration
	now       func() time.Time

	mu        sync.Mutex
	state     MatchUpdate
	cron      *cron.Cron
	isRunning bool
}

func NewEmitter(matchID string, interval time.Duration, hub Broadcaster, publisher Publisher, src random.Source, logger *logrus.Logger) *Emitter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	e := &Emitter{
		hub:       hub,
		publisher: publisher,
		src:       src,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
		cron:      cron.New(),
	}
	e.state = InitialUpdate(matchID, e.now())
	return e
}

// Start schedules the feed and broadcasts the current state so it is
// retained for viewers that connect before the first tick.
func (e *Emitter) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.isRunning {
		return fmt.Errorf("push emitter is already running")
	}

	schedule := fmt.Sprintf("@every %s", e.interval.String())
	if _, err := e.cron.AddFunc(schedule, e.emit); err != nil {
		return fmt.Errorf("failed to schedule push emitter: %w", err)
	}

	if err := e.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, e.state); err != nil {
		return fmt.Errorf("failed to broadcast initial state: %w", err)
	}

	e.cron.Start()
	e.isRunning = true

	e.logger.WithFields(logrus.Fields{
		"match_id": e.state.MatchID,
		"interval": e.interval.String(),
	}).Info("Push emitter started")
	return nil
}

func (e *Emitter) Stop() {
	e.mu.Lock()
	if !e.isRunning {
		e.mu.Unlock()
		return
	}
	e.isRunning = false
	e.mu.Unlock()

	// a running job takes e.mu, so wait outside it
	ctx := e.cron.Stop()
	<-ctx.Done()
	e.logger.Info("Push emitter stopped")
}

// Current returns a copy of the latest state.
func (e *Emitter) Current() MatchUpdate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyLocked()
}

// Tick advances the mock match by one ball and returns the new state.
func (e *Emitter) Tick() MatchUpdate {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	runs := e.src.Intn(7)
	s.Score.Runs += runs
	s.Delivery.RunsBatsman = runs
	s.BallInOver++

	if s.BallInOver > 6 {
		s.BallInOver = 1
		s.Over++
		s.Score.Overs = fmt.Sprintf("%d.0", s.Over)
	} else {
		s.Score.Overs = fmt.Sprintf("%d.%d", s.Over, s.BallInOver)
	}

	if s.WinProbability == nil {
		s.WinProbability = &WinProbability{TeamA: 0.5, TeamB: 0.5}
	}
	swing := (e.src.Float64() - 0.5) * 0.05
	teamA := s.WinProbability.TeamA + swing
	if teamA < 0 {
		teamA = 0
	} else if teamA > 1 {
		teamA = 1
	}
	s.WinProbability.TeamA = teamA
	s.WinProbability.TeamB = 1 - teamA
	s.Timestamp = e.now().UTC()

	return e.copyLocked()
}

func (e *Emitter) emit() {
	update := e.Tick()

	if err := e.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, update); err != nil {
		e.logger.WithError(err).Error("Failed to broadcast match update")
	}

	if e.publisher != nil {
		ctx, cancel := context.WithTimeout(context.Background(), e.interval)
		defer cancel()
		if err := e.publisher.Publish(ctx, update); err != nil {
			e.logger.WithError(err).WithField("match_id", update.MatchID).Warn("Failed to publish match update")
		}
	}
}

func (e *Emitter) copyLocked() MatchUpdate {
	out := e.state
	if e.state.WinProbability != nil {
		wp := *e.state.WinProbability
		out.WinProbability = &wp
	}
	return out
}
