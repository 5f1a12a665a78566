package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"wrstats/api/dto"
	"wrstats/importer"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// printTierlist prints one line per champion, tiers in display order.
func printTierlist(w io.Writer, result *dto.TierlistResponse) error {
	date := lo.FromPtrOr(result.Filters.Date, "no data")
	fmt.Fprintf(w, "\nRank: %s  |  Lane: %s  |  Date: %s  |  Lang: %s\n\n",
		result.Filters.Rank, result.Filters.Lane, date, result.Filters.Lang)

	table := newTable(w)
	table.Header("TIER", "#", "SLUG", "NAME", "WIN%", "PICK%", "BAN%", "STRENGTH")

	for _, tier := range result.TiersOrder {
		for _, entry := range result.Tiers[tier] {
			err := table.Append(
				tier,
				formatInt(entry.Position),
				entry.Slug,
				entry.Name,
				formatRate(entry.WinRate),
				formatRate(entry.PickRate),
				formatRate(entry.BanRate),
				formatInt(entry.StrengthLevel),
			)
			if err != nil {
				return err
			}
		}
	}

	return table.Render()
}

// printReport prints the counters of an import run.
func printReport(w io.Writer, report *importer.Report) error {
	fmt.Fprintf(w, "\nImport: %s  |  Read: %d  |  Imported: %d  |  Skipped: %d\n\n",
		report.Kind, report.Read, report.Imported, report.SkippedTotal())

	table := newTable(w)
	table.Header("COUNTER", "VALUE")

	reasons := lo.Keys(report.Skipped)
	slices.Sort(reasons)
	for _, reason := range reasons {
		if err := table.Append("skipped "+reason, strconv.Itoa(report.Skipped[reason])); err != nil {
			return err
		}
	}

	if err := table.Append("cleared strength", strconv.Itoa(report.ClearedStrength)); err != nil {
		return err
	}
	if err := table.Append("invalidated", strconv.Itoa(report.Invalidated)); err != nil {
		return err
	}

	return table.Render()
}

func formatRate(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatInt(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}
