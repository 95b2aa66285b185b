package refdata

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

// Repository reads and seeds the reference tables in a SQL database.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the reference tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Team{}, &models.Venue{}, &models.Player{}); err != nil {
		return fmt.Errorf("failed to migrate reference tables: %w", err)
	}
	return nil
}

// Drop removes the reference tables.
func (r *Repository) Drop(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Migrator().DropTable(&models.Player{}, &models.Venue{}, &models.Team{}); err != nil {
		return fmt.Errorf("failed to drop reference tables: %w", err)
	}
	return nil
}

// Seed upserts the store's tables. Existing rows with the same id are
// overwritten so the seed can be re-run.
func (r *Repository) Seed(ctx context.Context, s *Store) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{UpdateAll: true}
		if teams := s.Teams(""); len(teams) > 0 {
			if err := tx.Clauses(upsert).Create(&teams).Error; err != nil {
				return fmt.Errorf("failed to seed teams: %w", err)
			}
		}
		if venues := s.Venues(); len(venues) > 0 {
			if err := tx.Clauses(upsert).Create(&venues).Error; err != nil {
				return fmt.Errorf("failed to seed venues: %w", err)
			}
		}
		if players := s.Players(""); len(players) > 0 {
			if err := tx.Clauses(upsert).Create(&players).Error; err != nil {
				return fmt.Errorf("failed to seed players: %w", err)
			}
		}
		return nil
	})
}

// Load reads every reference table and builds a Store from it, ordered by id.
func (r *Repository) Load(ctx context.Context) (*Store, error) {
	db := r.db.WithContext(ctx)

	var teams []models.Team
	if err := db.Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	var venues []models.Venue
	if err := db.Order("id").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}

	var players []models.Player
	if err := db.Order("id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	if len(teams) == 0 || len(venues) == 0 {
		return nil, fmt.Errorf("reference tables are empty, run the seed command first")
	}

	return New(teams, venues, players)
}
