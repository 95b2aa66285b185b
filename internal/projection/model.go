package projection

import (
	"errors"
	"math"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

const (
	// baselineVenueAverage is the first-innings average a venue factor of 1 corresponds to.
	baselineVenueAverage = 160.0

	// minimumRunRate is the lowest scoring rate assumed for the overs still to come.
	minimumRunRate = 3.0

	bandLow  = 0.92
	bandHigh = 1.08
)

// ReferenceData is the part of the reference store the model reads.
type ReferenceData interface {
	Team(id string) (models.Team, error)
	Venue(id string) (models.Venue, error)
}

// Model projects a first-innings total from a partial innings state. It holds
// no mutable state and is safe for concurrent use.
type Model struct {
	ref ReferenceData
}

func NewModel(ref ReferenceData) *Model {
	return &Model{ref: ref}
}

// Inputs is a validated scenario with its references resolved.
type Inputs struct {
	Overs       float64
	Runs        int
	Wickets     int
	BattingTeam models.Team
	BowlingTeam models.Team
	Venue       models.Venue
}

// Project validates the scenario and computes its projection.
func (m *Model) Project(scenario models.MatchScenario) (*models.ProjectionResult, error) {
	in, err := m.Resolve(scenario)
	if err != nil {
		return nil, err
	}
	return Compute(in), nil
}

// Resolve checks every scenario field and looks up its references.
func (m *Model) Resolve(s models.MatchScenario) (Inputs, error) {
	switch {
	case s.Overs == nil:
		return Inputs{}, models.NewValidationError("overs", "is required")
	case s.Runs == nil:
		return Inputs{}, models.NewValidationError("runs", "is required")
	case s.Wickets == nil:
		return Inputs{}, models.NewValidationError("wickets", "is required")
	case s.BattingTeamID == "":
		return Inputs{}, models.NewValidationError("batting_team", "is required")
	case s.BowlingTeamID == "":
		return Inputs{}, models.NewValidationError("bowling_team", "is required")
	case s.VenueID == "":
		return Inputs{}, models.NewValidationError("venue", "is required")
	}

	overs, runs, wickets := *s.Overs, *s.Runs, *s.Wickets
	if math.IsNaN(overs) || overs < 0 || overs > models.MaxOvers {
		return Inputs{}, models.NewValidationError("overs", "must be between 0 and %d, got %v", models.MaxOvers, overs)
	}
	if runs < 0 {
		return Inputs{}, models.NewValidationError("runs", "must not be negative, got %d", runs)
	}
	if wickets < 0 || wickets > models.MaxWickets {
		return Inputs{}, models.NewValidationError("wickets", "must be between 0 and %d, got %d", models.MaxWickets, wickets)
	}
	if s.BattingTeamID == s.BowlingTeamID {
		return Inputs{}, models.NewValidationError("bowling_team", "must differ from the batting team")
	}

	batting, err := m.ref.Team(s.BattingTeamID)
	if err != nil {
		return Inputs{}, referenceError("batting_team", err)
	}
	bowling, err := m.ref.Team(s.BowlingTeamID)
	if err != nil {
		return Inputs{}, referenceError("bowling_team", err)
	}
	if batting.Category != bowling.Category {
		return Inputs{}, models.NewValidationError("bowling_team", "%s team %q cannot play %s team %q",
			bowling.Category, bowling.ID, batting.Category, batting.ID)
	}
	venue, err := m.ref.Venue(s.VenueID)
	if err != nil {
		return Inputs{}, referenceError("venue", err)
	}

	return Inputs{
		Overs:       overs,
		Runs:        runs,
		Wickets:     wickets,
		BattingTeam: batting,
		BowlingTeam: bowling,
		Venue:       venue,
	}, nil
}

// Compute runs the projection over already validated inputs.
func Compute(in Inputs) *models.ProjectionResult {
	runs := float64(in.Runs)
	divisor := runRateDivisor(in.Overs)

	currentRunRate := runs / divisor
	remainingOvers := math.Max(models.MaxOvers-in.Overs, 0)
	venueFactor := float64(in.Venue.AvgFirstInningsScore) / baselineVenueAverage
	resourceFactor := ResourceFactor(in.Wickets, remainingOvers)
	strengthDiff := float64(in.BattingTeam.Strength-in.BowlingTeam.Strength) / 500

	projected := runs + currentRunRate*remainingOvers*venueFactor*resourceFactor*(1+strengthDiff)
	if in.Wickets >= models.MaxWickets {
		projected = runs
	} else {
		projected = math.Max(runs+remainingOvers*minimumRunRate, projected)
	}

	predicted := Round(projected)
	par := in.Venue.ParScore

	return &models.ProjectionResult{
		PredictedScore: predicted,
		MinScore:       Round(float64(predicted) * bandLow),
		MaxScore:       Round(float64(predicted) * bandHigh),
		WinProbability: WinProbability(predicted, par),
		ParScore:       par,
		Trajectory:     Trajectory(in.Overs, in.Runs, predicted, par),
	}
}

// ResourceFactor approximates the share of batting resources left from
// wickets in hand and overs remaining. It ranges over [0.2, 1.2].
func ResourceFactor(wickets int, remainingOvers float64) float64 {
	resource := float64(models.MaxWickets-wickets)*10 + remainingOvers*5
	return math.Min(1, resource/150) + 0.2
}

// WinProbability compares a predicted total against par, in whole percent
// clamped to [1, 99].
func WinProbability(predicted, par int) int {
	p := 50 + (float64(predicted-par)/float64(par))*100
	return Round(math.Min(99, math.Max(1, p)))
}

// Trajectory returns the 21-point worm for overs 0..20. Overs already bowled
// follow the current run rate; the rest interpolate linearly to predicted.
func Trajectory(overs float64, runs, predicted, par int) []models.TrajectoryPoint {
	points := make([]models.TrajectoryPoint, 0, models.MaxOvers+1)
	divisor := runRateDivisor(overs)

	for i := 0; i <= models.MaxOvers; i++ {
		over := float64(i)
		var score float64
		if over <= overs {
			score = float64(runs) / divisor * over
		} else {
			score = float64(runs) + float64(predicted-runs)/(models.MaxOvers-overs)*(over-overs)
		}
		points = append(points, models.TrajectoryPoint{
			Over:      i,
			Projected: Round(score),
			Par:       Round(float64(par) / models.MaxOvers * over),
		})
	}
	return points
}

// Round rounds half up, matching the rounding the published figures use.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// runRateDivisor is overs, or 1 before the first over so the rate stays defined.
func runRateDivisor(overs float64) float64 {
	if overs == 0 {
		return 1
	}
	return overs
}

func referenceError(field string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return models.NewValidationError(field, "%v", err)
	}
	return err
}
