package fantasy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/cricket-sim/internal/models"
	"github.com/stitts-dev/cricket-sim/internal/refdata"
	"github.com/stitts-dev/cricket-sim/pkg/random"
)

var firstEleven = []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10", "p11"}

func roster(points ...float64) []models.Player {
	players := make([]models.Player, len(points))
	for i, pts := range points {
		players[i] = models.Player{
			ID:               fmt.Sprintf("x%d", i),
			Name:             fmt.Sprintf("Player %d", i),
			Role:             models.RoleBatsman,
			FantasyPointsAvg: pts,
		}
	}
	return players
}

func TestScoreIDs_FirstEleven(t *testing.T) {
	s := NewScorer(refdata.Default(), random.NewScripted(0.5))

	result, err := s.ScoreIDs(firstEleven)
	require.NoError(t, err)

	assert.InDelta(t, 745.0, result.BasePoints, 1e-9)
	assert.InDelta(t, 1.0, result.VarianceFactor, 1e-9)
	assert.Equal(t, 745, result.TotalPoints)
	assert.Equal(t, "p3", result.MVP.ID)
}

func TestScore_VarianceBounds(t *testing.T) {
	tests := []struct {
		name  string
		draw  float64
		total int
	}{
		{"low end", 0.25, 708},
		{"high end", 0.75, 782},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(refdata.Default(), random.NewScripted(tt.draw))
			result, err := s.ScoreIDs(firstEleven)
			require.NoError(t, err)
			assert.Equal(t, tt.total, result.TotalPoints)
		})
	}
}

func TestScore_SeededRange(t *testing.T) {
	s := NewScorer(refdata.Default(), random.New(7))

	for i := 0; i < 500; i++ {
		result, err := s.ScoreIDs(firstEleven)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.VarianceFactor, 0.9)
		assert.Less(t, result.VarianceFactor, 1.1)
		assert.GreaterOrEqual(t, result.TotalPoints, 670)
		assert.LessOrEqual(t, result.TotalPoints, 820)
	}
}

func TestScore_MVPTieKeepsFirst(t *testing.T) {
	s := NewScorer(refdata.Default(), random.NewScripted(0.5))

	result, err := s.Score(roster(10, 90, 20, 90, 30, 40, 50, 60, 70, 80, 90))
	require.NoError(t, err)
	assert.Equal(t, "x1", result.MVP.ID)
}

func TestScore_MVPIsRosterMember(t *testing.T) {
	s := NewScorer(refdata.Default(), random.New(3))
	team := roster(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)

	result, err := s.Score(team)
	require.NoError(t, err)
	assert.Contains(t, team, result.MVP)
	assert.Equal(t, "x10", result.MVP.ID)
}

func TestScore_Validation(t *testing.T) {
	s := NewScorer(refdata.Default(), random.NewScripted(0.5))

	tests := []struct {
		name string
		ids  []string
	}{
		{"empty", nil},
		{"ten players", firstEleven[:10]},
		{"twelve players", append(append([]string{}, firstEleven...), "p12")},
		{"duplicate", append(append([]string{}, firstEleven[:10]...), "p1")},
		{"unknown player", append(append([]string{}, firstEleven[:10]...), "p99")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.ScoreIDs(tt.ids)
			assert.Nil(t, result)

			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "player_ids", ve.Field)
		})
	}
}
