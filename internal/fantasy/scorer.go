package fantasy

import (
	"errors"

	"github.com/stitts-dev/cricket-sim/internal/models"
	"github.com/stitts-dev/cricket-sim/internal/projection"
	"github.com/stitts-dev/cricket-sim/pkg/random"
)

// TeamSize is the number of players a fantasy roster must hold.
const TeamSize = 11

// Players resolves roster ids against the reference store.
type Players interface {
	Player(id string) (models.Player, error)
}

// Scorer estimates the points a fantasy roster will collect. The estimate is
// the roster's average points scaled by a random factor in [0.9, 1.1).
type Scorer struct {
	players Players
	src     random.Source
}

func NewScorer(players Players, src random.Source) *Scorer {
	return &Scorer{players: players, src: src}
}

// ScoreIDs resolves ids through the reference store and scores the roster.
func (s *Scorer) ScoreIDs(ids []string) (*models.FantasyResult, error) {
	if len(ids) != TeamSize {
		return nil, models.NewValidationError("player_ids", "roster must have exactly %d players, got %d", TeamSize, len(ids))
	}

	roster := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		p, err := s.players.Player(id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, models.NewValidationError("player_ids", "%v", err)
			}
			return nil, err
		}
		roster = append(roster, p)
	}
	return s.Score(roster)
}

func (s *Scorer) Score(roster []models.Player) (*models.FantasyResult, error) {
	if len(roster) != TeamSize {
		return nil, models.NewValidationError("player_ids", "roster must have exactly %d players, got %d", TeamSize, len(roster))
	}

	seen := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		if _, dup := seen[p.ID]; dup {
			return nil, models.NewValidationError("player_ids", "player %s appears more than once", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	base := 0.0
	mvp := 0
	for i, p := range roster {
		base += p.FantasyPointsAvg
		// strict comparison keeps the earliest player on ties
		if p.FantasyPointsAvg > roster[mvp].FantasyPointsAvg {
			mvp = i
		}
	}

	factor := 0.9 + s.src.Float64()*0.2

	return &models.FantasyResult{
		TotalPoints:    projection.Round(base * factor),
		BasePoints:     base,
		VarianceFactor: factor,
		MVP:            roster[mvp],
	}, nil
}
