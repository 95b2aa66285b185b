package models

// MaxOvers is the innings length of the simulated format.
const MaxOvers = 20

// MaxWickets ends an innings when reached.
const MaxWickets = 10

// MatchScenario is a partial first-innings state. Numeric fields are pointers
// so that a missing value can be told apart from zero.
type MatchScenario struct {
	Overs         *float64 `json:"overs"`
	Runs          *int     `json:"runs"`
	Wickets       *int     `json:"wickets"`
	BattingTeamID string   `json:"batting_team"`
	BowlingTeamID string   `json:"bowling_team"`
	VenueID       string   `json:"venue"`
}

// TrajectoryPoint is one over of the worm graph.
type TrajectoryPoint struct {
	Over      int `json:"over"`
	Projected int `json:"projected"`
	Par       int `json:"par"`
}

type ProjectionResult struct {
	PredictedScore int               `json:"predicted_score"`
	MinScore       int               `json:"min_score"`
	MaxScore       int               `json:"max_score"`
	WinProbability int               `json:"win_probability"`
	ParScore       int               `json:"par_score"`
	Trajectory     []TrajectoryPoint `json:"trajectory"`
}

type MatchupResult struct {
	BatterID          string `json:"batter_id"`
	BowlerID          string `json:"bowler_id"`
	BallsFaced        int    `json:"balls_faced"`
	RunsScored        int    `json:"runs_scored"`
	Dismissals        int    `json:"dismissals"`
	StrikeRate        int    `json:"strike_rate"`
	DotBallPercentage int    `json:"dot_ball_percentage"`
	Verdict           string `json:"verdict"`
}

type FantasyResult struct {
	TotalPoints    int     `json:"total_points"`
	BasePoints     float64 `json:"base_points"`
	VarianceFactor float64 `json:"variance_factor"`
	MVP            Player  `json:"mvp"`
}
