package models

// TeamCategory separates national sides from league franchises.
type TeamCategory string

const (
	CategoryInternational TeamCategory = "international"
	CategoryFranchise     TeamCategory = "franchise"
)

// PitchType describes how a venue's surface usually plays.
type PitchType string

const (
	PitchBatting  PitchType = "batting"
	PitchBowling  PitchType = "bowling"
	PitchBalanced PitchType = "balanced"
)

// BowlingBias is the bowling style a venue historically favours.
type BowlingBias string

const (
	BiasPace    BowlingBias = "pace"
	BiasSpin    BowlingBias = "spin"
	BiasNeutral BowlingBias = "neutral"
)

// PlayerRole is a player's primary discipline.
type PlayerRole string

const (
	RoleBatsman      PlayerRole = "batsman"
	RoleBowler       PlayerRole = "bowler"
	RoleAllRounder   PlayerRole = "all-rounder"
	RoleWicketkeeper PlayerRole = "wicketkeeper"
)

// CanBat reports whether the role may be picked as the batter in a matchup.
func (r PlayerRole) CanBat() bool {
	return r == RoleBatsman || r == RoleWicketkeeper || r == RoleAllRounder
}

// CanBowl reports whether the role may be picked as the bowler in a matchup.
func (r PlayerRole) CanBowl() bool {
	return r == RoleBowler || r == RoleAllRounder
}

// Valid reports whether r is one of the known roles.
func (r PlayerRole) Valid() bool {
	switch r {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketkeeper:
		return true
	}
	return false
}

type Team struct {
	ID        string       `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	ShortName string       `gorm:"not null" json:"short_name"`
	Color     string       `json:"color"`
	Logo      string       `json:"logo"`
	Category  TeamCategory `gorm:"not null;index" json:"category"`
	Strength  int          `gorm:"not null" json:"strength"` // 0-100
}

// TableName specifies the table name for GORM
func (Team) TableName() string {
	return "teams"
}

type Venue struct {
	ID                   string      `gorm:"primaryKey" json:"id"`
	Name                 string      `gorm:"not null" json:"name"`
	City                 string      `json:"city"`
	AvgFirstInningsScore int         `gorm:"not null" json:"avg_first_innings_score"`
	PitchType            PitchType   `json:"pitch_type"`
	Bias                 BowlingBias `json:"bias"`
	ParScore             int         `gorm:"not null" json:"par_score"`
}

// TableName specifies the table name for GORM
func (Venue) TableName() string {
	return "venues"
}

type Player struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	TeamID           string     `gorm:"not null;index" json:"team_id"`
	Role             PlayerRole `gorm:"not null" json:"role"`
	BattingAverage   float64    `json:"batting_average"`
	StrikeRate       float64    `json:"strike_rate"`
	BowlingAverage   *float64   `json:"bowling_average,omitempty"`
	Economy          *float64   `json:"economy,omitempty"`
	FantasyPointsAvg float64    `gorm:"not null" json:"fantasy_points_avg"`
}

// TableName specifies the table name for GORM
func (Player) TableName() string {
	return "players"
}
