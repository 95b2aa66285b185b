package push

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	TopicMatchUpdate    = "match_update"
	TopicLiveSimulation = "live_simulation"
)

// MatchUpdate is the ball-by-ball record pushed to live viewers.
type MatchUpdate struct {
	MatchID        string          `json:"match_id"`
	Timestamp      time.Time       `json:"timestamp"`
	Inning         int             `json:"inning"`
	Over           int             `json:"over"`
	BallInOver     int             `json:"ball_in_over"`
	Score          Score           `json:"score"`
	Delivery       Delivery        `json:"delivery"`
	WinProbability *WinProbability `json:"win_probability,omitempty"`
	ProjectedScore int             `json:"projected_score,omitempty"`
}

type Score struct {
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Overs   string `json:"overs"`
}

type Delivery struct {
	BatsmanID    string          `json:"batsman_id"`
	BowlerID     string          `json:"bowler_id"`
	NonStrikerID string          `json:"non_striker_id,omitempty"`
	RunsBatsman  int             `json:"runs_batsman"`
	Extras       int             `json:"extras,omitempty"`
	Wicket       json.RawMessage `json:"wicket,omitempty"`
	ShotType     string          `json:"shot_type,omitempty"`
}

type WinProbability struct {
	TeamA float64 `json:"team_a"`
	TeamB float64 `json:"team_b"`
}

// ProviderEvent is the raw ball event of the upstream data provider.
type ProviderEvent struct {
	ID           string          `json:"id"`
	Inning       *int            `json:"inning"`
	Over         int             `json:"over"`
	Ball         *int            `json:"ball"`
	BowlerID     string          `json:"bowler_id"`
	BatsmanID    string          `json:"batsman_id"`
	NonStrikerID string          `json:"non_striker_id"`
	Runs         int             `json:"runs"`
	Extras       int             `json:"extras"`
	Wicket       json.RawMessage `json:"wicket"`
	TotalRuns    int             `json:"total_runs"`
	TotalWickets int             `json:"total_wickets"`
}

// NormalizeProviderEvent maps a provider event onto a MatchUpdate. Missing
// fields take the provider's documented defaults: match id "unknown", first
// innings and first ball of the over.
func NormalizeProviderEvent(ev ProviderEvent, now time.Time) MatchUpdate {
	matchID := ev.ID
	if matchID == "" {
		matchID = "unknown"
	}
	inning := 1
	if ev.Inning != nil {
		inning = *ev.Inning
	}
	ballInOver, ballShown := 1, 0
	if ev.Ball != nil {
		ballInOver, ballShown = *ev.Ball, *ev.Ball
	}
	wicket := ev.Wicket
	if string(wicket) == "null" {
		wicket = nil
	}

	return MatchUpdate{
		MatchID:    matchID,
		Timestamp:  now.UTC(),
		Inning:     inning,
		Over:       ev.Over,
		BallInOver: ballInOver,
		Score: Score{
			Runs:    ev.TotalRuns,
			Wickets: ev.TotalWickets,
			Overs:   fmt.Sprintf("%d.%d", ev.Over, ballShown),
		},
		Delivery: Delivery{
			BatsmanID:    ev.BatsmanID,
			BowlerID:     ev.BowlerID,
			NonStrikerID: ev.NonStrikerID,
			RunsBatsman:  ev.Runs,
			Extras:       ev.Extras,
			Wicket:       wicket,
			ShotType:     "unknown",
		},
	}
}

// DecodeUpdate accepts either a MatchUpdate or a ProviderEvent payload. A
// payload carrying "match_id" is taken as already normalised.
func DecodeUpdate(payload []byte, now time.Time) (MatchUpdate, error) {
	var probe struct {
		MatchID *string `json:"match_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return MatchUpdate{}, fmt.Errorf("failed to decode update: %w", err)
	}

	if probe.MatchID != nil {
		var update MatchUpdate
		if err := json.Unmarshal(payload, &update); err != nil {
			return MatchUpdate{}, fmt.Errorf("failed to decode match update: %w", err)
		}
		return update, nil
	}

	var ev ProviderEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return MatchUpdate{}, fmt.Errorf("failed to decode provider event: %w", err)
	}
	return NormalizeProviderEvent(ev, now), nil
}
