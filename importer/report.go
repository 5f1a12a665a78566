package importer

import "github.com/rs/zerolog"

// Reasons a record is left out of an import.
const (
	SkipMissingField = "missing_field"
	SkipUnknownRank  = "unknown_rank"
	SkipUnknownLane  = "unknown_lane"
	SkipBadDate      = "bad_date"
	SkipDuplicate    = "duplicate"
)

// Report summarizes a single import run.
type Report struct {
	Kind     string
	Read     int
	Imported int64
	Skipped  map[string]int
	// Rows whose strength level was out of the scale and stored as null.
	ClearedStrength int
	// Cached tierlists dropped after the import.
	Invalidated int
}

func newReport(kind string) *Report {
	return &Report{Kind: kind, Skipped: make(map[string]int)}
}

func (r *Report) skip(reason string) {
	r.Skipped[reason]++
}

// SkippedTotal is the number of records left out.
func (r *Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// MarshalZerologObject logs the report as a nested object.
func (r *Report) MarshalZerologObject(e *zerolog.Event) {
	skipped := zerolog.Dict()
	for reason, n := range r.Skipped {
		skipped.Int(reason, n)
	}

	e.Str("kind", r.Kind).
		Int("read", r.Read).
		Int64("imported", r.Imported).
		Dict("skipped", skipped).
		Int("cleared_strength", r.ClearedStrength).
		Int("invalidated", r.Invalidated)
}
