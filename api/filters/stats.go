package filters

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"wrstats/api/dto"
	"wrstats/pkg/database/models"
)

const (
	MaxSlugLength = 64
	MaxListItems  = 10
	DefaultLang   = "ru_ru"
)

// Query parameters shared by the tierlist and history endpoints.
type StatsQueryParams struct {
	Slug   string `form:"slug"`
	Rank   string `form:"rank"`
	Lane   string `form:"lane"`
	Date   string `form:"date"`
	From   string `form:"from"`
	To     string `form:"to"`
	Latest string `form:"latest"`
	Lang   string `form:"lang"`
}

// StatsFilter is the normalized predicate over the stats history.
// From and To are inclusive, either may be nil.
type StatsFilter struct {
	Slug       string
	Ranks      []string
	Lanes      []string
	From       *time.Time
	To         *time.Time
	WantLatest bool
	Lang       string
}

// NewStatsFilter validates the raw parameters.
// Every failure is a *ValidationError.
func NewStatsFilter(qp *StatsQueryParams) (*StatsFilter, error) {
	slug := strings.TrimSpace(qp.Slug)
	if utf8.RuneCountInString(slug) > MaxSlugLength {
		return nil, newValidationError("slug", "must be at most %d characters", MaxSlugLength)
	}

	ranks, err := parseList("rank", qp.Rank)
	if err != nil {
		return nil, err
	}

	lanes, err := parseList("lane", qp.Lane)
	if err != nil {
		return nil, err
	}

	filter := &StatsFilter{
		Slug:       slug,
		Ranks:      ranks,
		Lanes:      lanes,
		WantLatest: parseBool(qp.Latest),
		Lang:       strings.TrimSpace(qp.Lang),
	}
	if filter.Lang == "" {
		filter.Lang = DefaultLang
	}

	// A single date overrides the range, from/to are not even validated.
	if date := strings.TrimSpace(qp.Date); date != "" {
		day, err := parseDate("date", date)
		if err != nil {
			return nil, err
		}
		filter.From = day
		filter.To = day
		return filter, nil
	}

	if filter.From, err = parseDate("from", strings.TrimSpace(qp.From)); err != nil {
		return nil, err
	}
	if filter.To, err = parseDate("to", strings.TrimSpace(qp.To)); err != nil {
		return nil, err
	}

	return filter, nil
}

// HasDates reports whether the caller constrained the dates.
func (f *StatsFilter) HasDates() bool {
	return f.From != nil || f.To != nil
}

// OnDay returns a copy of the filter collapsed to a single day.
func (f *StatsFilter) OnDay(day time.Time) *StatsFilter {
	scoped := *f
	scoped.From = &day
	scoped.To = &day
	return &scoped
}

// Echo renders the resolved filter for the response.
// A lone lower bound is echoed as both endpoints.
func (f *StatsFilter) Echo() dto.FiltersEcho {
	echo := dto.FiltersEcho{
		Rank:   f.Ranks,
		Lane:   f.Lanes,
		From:   formatDate(f.From),
		To:     formatDate(f.To),
		Latest: f.WantLatest,
	}

	if f.Slug != "" {
		echo.Slug = lo.ToPtr(f.Slug)
	}

	if echo.To == nil && echo.From != nil {
		echo.To = lo.ToPtr(*echo.From)
	}

	return echo
}

// Split a comma separated list, dropping empty items.
func parseList(field, raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	items := lo.FilterMap(strings.Split(raw, ","), func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})

	if len(items) > MaxListItems {
		return nil, newValidationError(field, "at most %d values are allowed", MaxListItems)
	}
	if len(items) == 0 {
		return nil, nil
	}

	return items, nil
}

// Strict YYYY-MM-DD, an empty value is no date.
func parseDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	day, err := time.Parse(models.DateLayout, raw)
	if err != nil || len(raw) != len(models.DateLayout) {
		return nil, newValidationError(field, "expected a YYYY-MM-DD date, got %q", raw)
	}

	return &day, nil
}

func parseBool(raw string) bool {
	return raw == "1" || raw == "true"
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.Format(models.DateLayout))
}
