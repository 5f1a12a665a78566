package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"wrstats/api/cache"
	championrepo "wrstats/api/repositories/champion"
	statsrepo "wrstats/api/repositories/stats"
	"wrstats/pkg/messages"
)

// Importer upserts the normalized scraper output into the store.
type Importer struct {
	cache              cache.TierlistCache
	StatsRepository    statsrepo.StatsRepository
	ChampionRepository championrepo.ChampionRepository
}

// ImporterDeps is the dependency list of the importer.
// Cache is optional, when set it's invalidated after every import that changed rows.
type ImporterDeps struct {
	DB    *gorm.DB
	Cache cache.TierlistCache
}

func NewImporter(deps *ImporterDeps) *Importer {
	return &Importer{
		cache:              deps.Cache,
		StatsRepository:    statsrepo.NewStatsRepository(deps.DB),
		ChampionRepository: championrepo.NewChampionRepository(deps.DB),
	}
}

// ImportStats reads a JSON array of stats records.
// Records without their own date are stored on day.
func (im *Importer) ImportStats(ctx context.Context, r io.Reader, day time.Time) (*Report, error) {
	var records []StatsRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", "stats", err)
	}

	report := newReport("stats")
	report.Read = len(records)

	rows := NormalizeStats(records, day, report)
	if len(rows) > 0 {
		affected, err := im.StatsRepository.UpsertStats(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert the stats: %w", err)
		}
		report.Imported = affected
	}

	im.invalidate(ctx, report)

	zerolog.Ctx(ctx).Info().Object("report", report).Msg("Stats imported")
	return report, nil
}

// ImportChampions reads a JSON array of champion records.
func (im *Importer) ImportChampions(ctx context.Context, r io.Reader) (*Report, error) {
	var records []ChampionRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", "champions", err)
	}

	report := newReport("champions")
	report.Read = len(records)

	champions := NormalizeChampions(records, report)
	if len(champions) > 0 {
		affected, err := im.ChampionRepository.UpsertChampions(ctx, champions)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert the champions: %w", err)
		}
		report.Imported = affected
	}

	// Display names are baked into the cached tierlists.
	im.invalidate(ctx, report)

	zerolog.Ctx(ctx).Info().Object("report", report).Msg("Champions imported")
	return report, nil
}

// Drop the cached tierlists once something changed.
func (im *Importer) invalidate(ctx context.Context, report *Report) {
	if im.cache == nil || report.Imported == 0 {
		return
	}

	invalidated, err := im.cache.Invalidate(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Couldn't invalidate the tierlist cache")
	}
	report.Invalidated = invalidated
}

// ImportStatsFrom imports the stats drop of day.
func (im *Importer) ImportStatsFrom(ctx context.Context, src Source, day time.Time) (*Report, error) {
	body, err := src.Open(ctx, StatsKey(day))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return im.ImportStats(ctx, body, day)
}

// ImportChampionsFrom imports the latest catalog drop.
func (im *Importer) ImportChampionsFrom(ctx context.Context, src Source) (*Report, error) {
	body, err := src.Open(ctx, ChampionsKey)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return im.ImportChampions(ctx, body)
}
