package historyservice

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"wrstats/api/dto"
	"wrstats/api/filters"
	statsrepo "wrstats/api/repositories/stats"
	"wrstats/pkg/database/models"
)

// HistoryService serves the raw stats history.
type HistoryService struct {
	StatsRepository statsrepo.StatsRepository
}

// HistoryServiceDeps is the dependency list for the history service.
type HistoryServiceDeps struct {
	DB *gorm.DB
}

// NewHistoryService creates a history service.
func NewHistoryService(deps *HistoryServiceDeps) *HistoryService {
	return &HistoryService{
		StatsRepository: statsrepo.NewStatsRepository(deps.DB),
	}
}

// GetHistory returns the rows matching the filter.
// When latest is requested without explicit dates, the query collapses to the latest day of the slice.
func (hs *HistoryService) GetHistory(ctx context.Context, filter *filters.StatsFilter) (*dto.HistoryResponse, error) {
	if filter.WantLatest && !filter.HasDates() {
		latest, err := hs.StatsRepository.GetLatestDate(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve the latest date: %w", err)
		}

		// Nothing matches the slice.
		if latest == nil {
			return &dto.HistoryResponse{
				Filters: filter.Echo(),
				Count:   0,
				Items:   []dto.StatsItem{},
			}, nil
		}

		filter = filter.OnDay(*latest)
	}

	rows, err := hs.StatsRepository.GetHistory(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get the history: %w", err)
	}

	items := lo.Map(rows, func(row *models.ChampionStats, _ int) dto.StatsItem {
		return toStatsItem(row)
	})

	return &dto.HistoryResponse{
		Filters: filter.Echo(),
		Count:   len(items),
		Items:   items,
	}, nil
}

// GetUpdatedAt returns the most recent date of the whole history.
func (hs *HistoryService) GetUpdatedAt(ctx context.Context) (*dto.UpdatedAtResponse, error) {
	latest, err := hs.StatsRepository.GetLatestDate(ctx, &filters.StatsFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get the latest date: %w", err)
	}

	if latest == nil {
		return &dto.UpdatedAtResponse{}, nil
	}

	return &dto.UpdatedAtResponse{
		UpdatedAt: lo.ToPtr(latest.Format(models.DateLayout)),
	}, nil
}

func toStatsItem(row *models.ChampionStats) dto.StatsItem {
	return dto.StatsItem{
		Date:          row.DateString(),
		Slug:          row.Slug,
		CnHeroId:      row.CnHeroId,
		Rank:          row.Rank,
		Lane:          row.Lane,
		Position:      row.Position,
		WinRate:       row.WinRate,
		PickRate:      row.PickRate,
		BanRate:       row.BanRate,
		StrengthLevel: row.StrengthLevel,
	}
}
