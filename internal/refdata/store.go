package refdata

import (
	"fmt"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

// Store holds the immutable team, venue and player tables. It is built once
// at startup and only read afterwards, so it is safe for concurrent use.
type Store struct {
	teams   []models.Team
	venues  []models.Venue
	players []models.Player

	teamIndex   map[string]int
	venueIndex  map[string]int
	playerIndex map[string]int
}

// Default returns a Store over the built-in reference tables.
func Default() *Store {
	s, err := New(builtinTeams, builtinVenues, builtinPlayers)
	if err != nil {
		// built-in tables are fixed; a failure here is a programming error
		panic(err)
	}
	return s
}

// New validates the tables and builds a Store over private copies of them.
func New(teams []models.Team, venues []models.Venue, players []models.Player) (*Store, error) {
	s := &Store{
		teams:       make([]models.Team, len(teams)),
		venues:      make([]models.Venue, len(venues)),
		players:     make([]models.Player, len(players)),
		teamIndex:   make(map[string]int, len(teams)),
		venueIndex:  make(map[string]int, len(venues)),
		playerIndex: make(map[string]int, len(players)),
	}
	copy(s.teams, teams)
	copy(s.venues, venues)
	for i, p := range players {
		s.players[i] = clonePlayer(p)
	}

	for i, t := range s.teams {
		if t.ID == "" {
			return nil, fmt.Errorf("team at index %d has no id", i)
		}
		if _, dup := s.teamIndex[t.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %q", t.ID)
		}
		if t.Strength < 0 || t.Strength > 100 {
			return nil, fmt.Errorf("team %q strength %d outside 0-100", t.ID, t.Strength)
		}
		s.teamIndex[t.ID] = i
	}

	for i, v := range s.venues {
		if v.ID == "" {
			return nil, fmt.Errorf("venue at index %d has no id", i)
		}
		if _, dup := s.venueIndex[v.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %q", v.ID)
		}
		if v.ParScore <= 0 || v.AvgFirstInningsScore <= 0 {
			return nil, fmt.Errorf("venue %q needs positive par and average scores", v.ID)
		}
		s.venueIndex[v.ID] = i
	}

	for i, p := range s.players {
		if p.ID == "" {
			return nil, fmt.Errorf("player at index %d has no id", i)
		}
		if _, dup := s.playerIndex[p.ID]; dup {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		if !p.Role.Valid() {
			return nil, fmt.Errorf("player %q has unknown role %q", p.ID, p.Role)
		}
		if _, ok := s.teamIndex[p.TeamID]; !ok {
			return nil, fmt.Errorf("player %q references unknown team %q", p.ID, p.TeamID)
		}
		s.playerIndex[p.ID] = i
	}

	return s, nil
}

// Teams returns all teams, or only those of category when it is non-empty.
func (s *Store) Teams(category models.TeamCategory) []models.Team {
	out := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) Venues() []models.Venue {
	out := make([]models.Venue, len(s.venues))
	copy(out, s.venues)
	return out
}

// Players returns all players, or only those with role when it is non-empty.
func (s *Store) Players(role models.PlayerRole) []models.Player {
	return s.filterPlayers(func(p models.Player) bool {
		return role == "" || p.Role == role
	})
}

// Batters returns the players eligible to bat in a matchup.
func (s *Store) Batters() []models.Player {
	return s.filterPlayers(func(p models.Player) bool { return p.Role.CanBat() })
}

// Bowlers returns the players eligible to bowl in a matchup.
func (s *Store) Bowlers() []models.Player {
	return s.filterPlayers(func(p models.Player) bool { return p.Role.CanBowl() })
}

func (s *Store) Team(id string) (models.Team, error) {
	i, ok := s.teamIndex[id]
	if !ok {
		return models.Team{}, fmt.Errorf("team %q: %w", id, models.ErrNotFound)
	}
	return s.teams[i], nil
}

func (s *Store) Venue(id string) (models.Venue, error) {
	i, ok := s.venueIndex[id]
	if !ok {
		return models.Venue{}, fmt.Errorf("venue %q: %w", id, models.ErrNotFound)
	}
	return s.venues[i], nil
}

func (s *Store) Player(id string) (models.Player, error) {
	i, ok := s.playerIndex[id]
	if !ok {
		return models.Player{}, fmt.Errorf("player %q: %w", id, models.ErrNotFound)
	}
	return clonePlayer(s.players[i]), nil
}

func (s *Store) filterPlayers(keep func(models.Player) bool) []models.Player {
	out := make([]models.Player, 0, len(s.players))
	for _, p := range s.players {
		if keep(p) {
			out = append(out, clonePlayer(p))
		}
	}
	return out
}

func clonePlayer(p models.Player) models.Player {
	if p.BowlingAverage != nil {
		v := *p.BowlingAverage
		p.BowlingAverage = &v
	}
	if p.Economy != nil {
		v := *p.Economy
		p.Economy = &v
	}
	return p
}
