package models

import "fmt"

// ScorePoint is one entry of the live score history series.
type ScorePoint struct {
	Ball  int `json:"ball"`
	Score int `json:"score"`
}

// LiveMatchState is the running state of a simulated innings.
type LiveMatchState struct {
	Score      int          `json:"score"`
	Wickets    int          `json:"wickets"`
	Balls      int          `json:"balls"`
	Overs      int          `json:"overs"`
	Commentary []string     `json:"commentary"`
	History    []ScorePoint `json:"history"`
}

// RunRate is runs per six legal balls, zero before the first ball.
func (s LiveMatchState) RunRate() float64 {
	if s.Balls == 0 {
		return 0
	}
	return float64(s.Score) / (float64(s.Balls) / 6)
}

// OversDisplay renders balls bowled in the usual "overs.balls" notation.
func (s LiveMatchState) OversDisplay() string {
	return fmt.Sprintf("%d.%d", s.Balls/6, s.Balls%6)
}

// Finished reports whether the innings can take no further deliveries.
func (s LiveMatchState) Finished() bool {
	return s.Wickets >= MaxWickets || s.Overs >= MaxOvers
}
