package statsrepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wrstats/api/filters"
	"wrstats/pkg/database/models"
	"wrstats/pkg/messages"
)

const upsertBatchSize = 500

// StatsRepository is the public interface for the stats history.
type StatsRepository interface {
	GetHistory(ctx context.Context, filter *filters.StatsFilter) ([]*models.ChampionStats, error)
	GetLatestDate(ctx context.Context, filter *filters.StatsFilter) (*time.Time, error)
	UpsertStats(ctx context.Context, rows []*models.ChampionStats) (int64, error)
}

// statsRepository repository structure.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetHistory returns the rows matching the filter ordered by date, slug, rank and lane.
func (r *statsRepository) GetHistory(ctx context.Context, filter *filters.StatsFilter) ([]*models.ChampionStats, error) {
	if filter == nil {
		return nil, errFiltersNil
	}

	var rows []*models.ChampionStats
	err := r.db.WithContext(ctx).
		Scopes(withFilter(filter)).
		Order(`"date" ASC, slug ASC, rank ASC, lane ASC`).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// GetLatestDate returns the most recent date for the filtered slice.
// Date bounds on the filter are applied when present. Nil when no row matches.
func (r *statsRepository) GetLatestDate(ctx context.Context, filter *filters.StatsFilter) (*time.Time, error) {
	if filter == nil {
		return nil, errFiltersNil
	}

	var latest sql.NullTime
	err := r.db.WithContext(ctx).
		Model(&models.ChampionStats{}).
		Scopes(withFilter(filter)).
		Select(`MAX("date")`).
		Row().
		Scan(&latest)
	if err != nil {
		return nil, err
	}

	if !latest.Valid {
		return nil, nil
	}

	day := latest.Time.UTC()
	return &day, nil
}

// UpsertStats inserts the rows, replacing any existing row with the same (date, slug, rank, lane).
func (r *statsRepository) UpsertStats(ctx context.Context, rows []*models.ChampionStats) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}, {Name: "slug"}, {Name: "rank"}, {Name: "lane"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"cn_hero_id", "position", "win_rate", "pick_rate", "ban_rate", "strength_level",
			}),
		}).
		CreateInBatches(rows, upsertBatchSize)

	return result.RowsAffected, result.Error
}

// withFilter applies the non-empty parts of the filter.
func withFilter(filter *filters.StatsFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Slug != "" {
			db = db.Where("slug = ?", filter.Slug)
		}

		if len(filter.Ranks) > 0 {
			db = db.Where("rank IN ?", filter.Ranks)
		}

		if len(filter.Lanes) > 0 {
			db = db.Where("lane IN ?", filter.Lanes)
		}

		if filter.From != nil {
			db = db.Where(`"date" >= ?`, *filter.From)
		}

		if filter.To != nil {
			db = db.Where(`"date" <= ?`, *filter.To)
		}

		return db
	}
}

var errFiltersNil = errors.New(messages.FiltersNotNil)
