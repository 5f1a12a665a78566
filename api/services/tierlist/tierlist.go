package tierlistservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"wrstats/api/cache"
	"wrstats/api/dto"
	"wrstats/api/filters"
	championrepo "wrstats/api/repositories/champion"
	statsrepo "wrstats/api/repositories/stats"
	"wrstats/pkg/database/models"
	tiervalues "wrstats/pkg/wrvalues/tier"
)

// Tierlist service with the repositories and the optional response cache.
type TierlistService struct {
	cache              cache.TierlistCache
	StatsRepository    statsrepo.StatsRepository
	ChampionRepository championrepo.ChampionRepository
}

// TierlistServiceDeps is the dependency list for the tierlist service.
type TierlistServiceDeps struct {
	DB    *gorm.DB
	Cache cache.TierlistCache
}

// NewTierlistService creates a tierlist service.
func NewTierlistService(deps *TierlistServiceDeps) *TierlistService {
	return &TierlistService{
		cache:              deps.Cache,
		StatsRepository:    statsrepo.NewStatsRepository(deps.DB),
		ChampionRepository: championrepo.NewChampionRepository(deps.DB),
	}
}

// GetTierlist renders the tierlist of a single rank and lane for one day.
// The day is the explicit date, or the latest one of the slice inside the optional range.
func (ts *TierlistService) GetTierlist(ctx context.Context, filter *filters.TierlistFilter) (*dto.TierlistResponse, error) {
	day, err := ts.resolveDay(ctx, filter.StatsFilter)
	if err != nil {
		return nil, err
	}

	if day == nil {
		return &dto.TierlistResponse{
			Filters:    filter.Echo(nil),
			TiersOrder: tiervalues.OrderCopy(),
			Tiers:      ComputeTiers(nil, nil, filter.Lang),
		}, nil
	}

	date := day.Format(models.DateLayout)
	key := scopedKey(filter, date)

	var cached dto.TierlistResponse
	if ts.getFromCache(ctx, key, &cached) {
		return &cached, nil
	}

	rows, catalog, err := ts.fetchDay(ctx, filter.OnDay(*day))
	if err != nil {
		return nil, err
	}

	response := &dto.TierlistResponse{
		Filters:    filter.Echo(&date),
		TiersOrder: tiervalues.OrderCopy(),
		Tiers:      ComputeTiers(rows, catalog, filter.Lang),
	}

	ts.populateCache(ctx, key, response)
	return response, nil
}

// GetBulkTierlist renders every rank and lane combination of the filter for one day.
func (ts *TierlistService) GetBulkTierlist(ctx context.Context, filter *filters.StatsFilter) (*dto.BulkTierlistResponse, error) {
	day, err := ts.resolveDay(ctx, filter)
	if err != nil {
		return nil, err
	}

	if day == nil {
		return &dto.BulkTierlistResponse{
			Filters:         filter.BulkEcho(nil),
			TiersOrder:      tiervalues.OrderCopy(),
			TiersByRankLane: map[string]*dto.RankLaneTiers{},
		}, nil
	}

	date := day.Format(models.DateLayout)
	key := bulkKey(filter, date)

	var cached dto.BulkTierlistResponse
	if ts.getFromCache(ctx, key, &cached) {
		return &cached, nil
	}

	rows, catalog, err := ts.fetchDay(ctx, filter.OnDay(*day))
	if err != nil {
		return nil, err
	}

	response := &dto.BulkTierlistResponse{
		Filters:         filter.BulkEcho(&date),
		TiersOrder:      tiervalues.OrderCopy(),
		TiersByRankLane: ComputeBulkTiers(rows, catalog, filter.Lang),
	}

	ts.populateCache(ctx, key, response)
	return response, nil
}

// resolveDay picks the single day to render.
func (ts *TierlistService) resolveDay(ctx context.Context, filter *filters.StatsFilter) (*time.Time, error) {
	if filter.From != nil && filter.To != nil && filter.From.Equal(*filter.To) {
		return filter.From, nil
	}

	day, err := ts.StatsRepository.GetLatestDate(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve the latest date: %w", err)
	}
	return day, nil
}

// fetchDay loads the rows and the catalog concurrently.
func (ts *TierlistService) fetchDay(ctx context.Context, filter *filters.StatsFilter) ([]*models.ChampionStats, []*models.Champion, error) {
	var rows []*models.ChampionStats
	var catalog []*models.Champion

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = ts.StatsRepository.GetHistory(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to get the stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = ts.ChampionRepository.GetChampions(gctx)
		if err != nil {
			return fmt.Errorf("failed to get the champions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rows, catalog, nil
}

// getFromCache retrieves a cached response, the cache is optional.
func (ts *TierlistService) getFromCache(ctx context.Context, key string, dest any) bool {
	if ts.cache == nil {
		return false
	}
	return ts.cache.Get(ctx, key, dest)
}

// populateCache stores the response, failures are only logged.
func (ts *TierlistService) populateCache(ctx context.Context, key string, value any) {
	if ts.cache == nil {
		return
	}
	if err := ts.cache.Set(ctx, key, value); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Couldn't cache the tierlist")
	}
}

// scopedKey generates the cache key of the scoped tierlist.
func scopedKey(filter *filters.TierlistFilter, date string) string {
	var builder strings.Builder
	builder.WriteString(cache.TierlistKeyPrefix + "scoped")
	builder.WriteString(":rank_" + filter.Rank)
	builder.WriteString(":lane_" + filter.Lane)
	builder.WriteString(":date_" + date)
	builder.WriteString(":lang_" + filter.Lang)

	if filter.Slug != "" {
		builder.WriteString(":slug_" + filter.Slug)
	}

	return builder.String()
}

// bulkKey generates the cache key of the bulk tierlist.
func bulkKey(filter *filters.StatsFilter, date string) string {
	var builder strings.Builder
	builder.WriteString(cache.TierlistKeyPrefix + "bulk")
	builder.WriteString(":date_" + date)
	builder.WriteString(":lang_" + filter.Lang)

	if len(filter.Ranks) > 0 {
		builder.WriteString(":ranks_" + strings.Join(filter.Ranks, ","))
	}

	if len(filter.Lanes) > 0 {
		builder.WriteString(":lanes_" + strings.Join(filter.Lanes, ","))
	}

	if filter.Slug != "" {
		builder.WriteString(":slug_" + filter.Slug)
	}

	return builder.String()
}
