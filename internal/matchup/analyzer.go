package matchup

import (
	"errors"
	"unicode/utf8"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

const (
	VerdictBatter = "Batsman Dominates"
	VerdictBowler = "Bowler has the Edge"
)

// Players is the part of the reference store the analyzer reads.
type Players interface {
	Player(id string) (models.Player, error)
	Batters() []models.Player
	Bowlers() []models.Player
}

// Analyzer derives head-to-head figures for a batter and a bowler. No history
// is stored, so the figures come from a seed over the two names and are
// identical on every call for the same pair.
type Analyzer struct {
	players Players
}

func NewAnalyzer(players Players) *Analyzer {
	return &Analyzer{players: players}
}

// Candidates lists the players that may be picked on each side.
func (a *Analyzer) Candidates() (batters, bowlers []models.Player) {
	return a.players.Batters(), a.players.Bowlers()
}

func (a *Analyzer) Analyze(batterID, bowlerID string) (*models.MatchupResult, error) {
	if batterID == "" {
		return nil, models.NewValidationError("batter", "is required")
	}
	if bowlerID == "" {
		return nil, models.NewValidationError("bowler", "is required")
	}
	if batterID == bowlerID {
		return nil, models.NewValidationError("bowler", "must differ from the batter")
	}

	batter, err := a.resolve("batter", batterID)
	if err != nil {
		return nil, err
	}
	if !batter.Role.CanBat() {
		return nil, models.NewValidationError("batter", "%s is a %s and cannot be picked as the batter", batter.Name, batter.Role)
	}

	bowler, err := a.resolve("bowler", bowlerID)
	if err != nil {
		return nil, err
	}
	if !bowler.Role.CanBowl() {
		return nil, models.NewValidationError("bowler", "%s is a %s and cannot be picked as the bowler", bowler.Name, bowler.Role)
	}

	result := FromSeed(Seed(batter, bowler))
	result.BatterID = batter.ID
	result.BowlerID = bowler.ID
	return result, nil
}

// Seed is the combined character length of both names.
func Seed(batter, bowler models.Player) int {
	return utf8.RuneCountInString(batter.Name) + utf8.RuneCountInString(bowler.Name)
}

// FromSeed maps a seed onto the head-to-head figures.
func FromSeed(seed int) *models.MatchupResult {
	verdict := VerdictBowler
	if seed%2 == 0 {
		verdict = VerdictBatter
	}
	return &models.MatchupResult{
		BallsFaced:        30 + seed*2,
		RunsScored:        35 + seed,
		Dismissals:        seed % 3,
		StrikeRate:        100 + seed*5,
		DotBallPercentage: 40 - seed%10,
		Verdict:           verdict,
	}
}

func (a *Analyzer) resolve(field, id string) (models.Player, error) {
	p, err := a.players.Player(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Player{}, models.NewValidationError(field, "%v", err)
		}
		return models.Player{}, err
	}
	return p, nil
}
