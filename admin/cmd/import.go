package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"wrstats/api/cache"
	"wrstats/importer"
	"wrstats/pkg/bucket"
	"wrstats/pkg/database/models"
	"wrstats/pkg/redis"
)

var (
	importFile string
	importDate string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a scraper drop",
	Long:  "Import a scraper drop from a local file, or from the import bucket when --file is not set.",
}

var importStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Import the stats rows of a day",
	Args:  cobra.NoArgs,
	RunE:  runImportStats,
}

var importChampionsCmd = &cobra.Command{
	Use:   "champions",
	Short: "Import the champion catalog",
	Args:  cobra.NoArgs,
	RunE:  runImportChampions,
}

func init() {
	importCmd.PersistentFlags().StringVar(&importFile, "file", "", "path to a JSON drop")
	importStatsCmd.Flags().StringVar(&importDate, "date", "", "day of the rows without a date, YYYY-MM-DD (default today UTC)")

	importCmd.AddCommand(importStatsCmd)
	importCmd.AddCommand(importChampionsCmd)
}

func runImportStats(cmd *cobra.Command, args []string) error {
	day, err := parseDay(importDate)
	if err != nil {
		return err
	}

	return runImport(cmd.Context(), func(ctx context.Context, im *importer.Importer, src importer.Source) (*importer.Report, error) {
		if importFile != "" {
			f, err := os.Open(importFile)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return im.ImportStats(ctx, f, day)
		}
		return im.ImportStatsFrom(ctx, src, day)
	})
}

func runImportChampions(cmd *cobra.Command, args []string) error {
	return runImport(cmd.Context(), func(ctx context.Context, im *importer.Importer, src importer.Source) (*importer.Report, error) {
		if importFile != "" {
			f, err := os.Open(importFile)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return im.ImportChampions(ctx, f)
		}
		return im.ImportChampionsFrom(ctx, src)
	})
}

type importFunc func(ctx context.Context, im *importer.Importer, src importer.Source) (*importer.Report, error)

func runImport(ctx context.Context, fn importFunc) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	ctx = env.log.WithContext(ctx)

	var src importer.Source
	if importFile == "" {
		if env.cfg.Bucket.ImportBucket == "" {
			return fmt.Errorf("either --file or BUCKET_IMPORT_BUCKET is required")
		}
		src = importer.NewBucketSource(bucket.NewClient(env.cfg.Bucket), env.cfg.Bucket.ImportBucket)
	}

	var tierlistCache cache.TierlistCache
	redisClient, err := redis.NewClient(ctx, env.cfg.Redis)
	if err != nil {
		env.log.Warn().Err(err).Msg("Redis unavailable, the tierlist cache won't be invalidated")
	} else {
		defer redisClient.Close()
		tierlistCache = cache.NewTierlistCache(redisClient)
	}

	im := importer.NewImporter(&importer.ImporterDeps{
		DB:    env.db,
		Cache: tierlistCache,
	})

	report, err := fn(ctx, im, src)
	if err != nil {
		return err
	}

	return printReport(os.Stdout, report)
}

// Strict YYYY-MM-DD, empty is today in UTC.
func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	day, err := time.Parse(models.DateLayout, raw)
	if err != nil || len(raw) != len(models.DateLayout) {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", raw)
	}
	return day, nil
}
