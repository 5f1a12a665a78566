package filters

import (
	"wrstats/api/dto"
	"wrstats/pkg/wrvalues/segment"
)

// TierlistFilter scopes the stats filter to a single rank and lane.
type TierlistFilter struct {
	*StatsFilter
	Rank string
	Lane string
}

// NewTierlistFilter builds the scoped tierlist filter.
// Missing rank and lane fall back to the defaults, more than one of either is rejected.
func NewTierlistFilter(qp *StatsQueryParams) (*TierlistFilter, error) {
	stats, err := NewStatsFilter(qp)
	if err != nil {
		return nil, err
	}

	rank, err := single("rank", stats.Ranks, segment.DefaultRank)
	if err != nil {
		return nil, err
	}

	lane, err := single("lane", stats.Lanes, segment.DefaultLane)
	if err != nil {
		return nil, err
	}

	stats.Ranks = []string{rank}
	stats.Lanes = []string{lane}

	return &TierlistFilter{
		StatsFilter: stats,
		Rank:        rank,
		Lane:        lane,
	}, nil
}

// Echo of the scoped tierlist, date is the resolved day.
func (f *TierlistFilter) Echo(date *string) dto.TierlistFiltersEcho {
	echo := dto.TierlistFiltersEcho{
		Rank: f.Rank,
		Lane: f.Lane,
		Date: date,
		Lang: f.Lang,
	}
	if f.Slug != "" {
		echo.Slug = &f.Slug
	}
	return echo
}

// BulkEcho renders the bulk tierlist filters.
func (f *StatsFilter) BulkEcho(date *string) dto.BulkFiltersEcho {
	echo := dto.BulkFiltersEcho{
		Date: date,
		Lang: f.Lang,
		Rank: f.Ranks,
		Lane: f.Lanes,
	}
	if f.Slug != "" {
		echo.Slug = &f.Slug
	}
	return echo
}

func single(field string, values []string, fallback string) (string, error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 1:
		return values[0], nil
	default:
		return "", newValidationError(field, "only one value is allowed on the scoped tierlist")
	}
}
