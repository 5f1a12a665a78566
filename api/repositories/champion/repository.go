package championrepository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wrstats/pkg/database/models"
)

// ChampionRepository is the public interface of the champion catalog.
type ChampionRepository interface {
	GetChampions(ctx context.Context) ([]*models.Champion, error)
	UpsertChampions(ctx context.Context, champions []*models.Champion) (int64, error)
}

type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a champion repository.
func NewChampionRepository(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

// GetChampions returns the whole catalog ordered by slug.
func (r *championRepository) GetChampions(ctx context.Context) ([]*models.Champion, error) {
	var champions []*models.Champion
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&champions).Error; err != nil {
		return nil, err
	}
	return champions, nil
}

// UpsertChampions inserts or replaces the champions by slug.
func (r *championRepository) UpsertChampions(ctx context.Context, champions []*models.Champion) (int64, error) {
	if len(champions) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			UpdateAll: true,
		}).
		Create(champions)

	return result.RowsAffected, result.Error
}
