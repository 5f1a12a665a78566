package jobs

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"wrstats/importer"
	"wrstats/pkg/logger"
)

// ImportJobs runs the daily imports of the scraper drops.
type ImportJobs struct {
	importer  *importer.Importer
	source    importer.Source
	uploader  logger.ObjectUploader
	logBucket string
	logLevel  string
	out       io.Writer
	now       func() time.Time
}

// ImportJobsDeps is the dependency list of the import jobs.
// Run logs are only archived when both Uploader and LogBucket are set.
type ImportJobsDeps struct {
	Importer  *importer.Importer
	Source    importer.Source
	Uploader  logger.ObjectUploader
	LogBucket string
	LogLevel  string
	Out       io.Writer
	Now       func() time.Time
}

func NewImportJobs(deps *ImportJobsDeps) *ImportJobs {
	jobs := &ImportJobs{
		importer:  deps.Importer,
		source:    deps.Source,
		uploader:  deps.Uploader,
		logBucket: deps.LogBucket,
		logLevel:  deps.LogLevel,
		out:       deps.Out,
		now:       deps.Now,
	}

	if jobs.out == nil {
		jobs.out = os.Stdout
	}
	if jobs.now == nil {
		jobs.now = time.Now
	}

	return jobs
}

// ImportStats imports the stats drop of the current UTC day.
func (j *ImportJobs) ImportStats() error {
	return j.run("import-stats", func(ctx context.Context) error {
		now := j.now().UTC()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		_, err := j.importer.ImportStatsFrom(ctx, j.source, day)
		return err
	})
}

// ImportChampions imports the latest catalog drop.
func (j *ImportJobs) ImportChampions() error {
	return j.run("import-champions", func(ctx context.Context) error {
		_, err := j.importer.ImportChampionsFrom(ctx, j.source)
		return err
	})
}

// Run the job with its own run log, archived at the end.
func (j *ImportJobs) run(job string, fn func(ctx context.Context) error) error {
	rl, err := logger.NewRunLog(j.out, j.logLevel, job)
	if err != nil {
		return fmt.Errorf("couldn't create the run log: %w", err)
	}
	defer rl.Close()

	ctx := rl.Logger.WithContext(context.Background())
	startTime := j.now()

	rl.Logger.Info().Msg("Job started")
	jobErr := fn(ctx)
	if jobErr != nil {
		rl.Logger.Error().Err(jobErr).Msg("Job failed")
	} else {
		rl.Logger.Info().Dur("duration", time.Since(startTime)).Msg("Job finished")
	}

	if j.uploader != nil && j.logBucket != "" {
		key := fmt.Sprintf("scheduler/%s/%s.log", job, startTime.UTC().Format("2006-01-02T15-04-05"))
		if err := rl.UploadToS3Bucket(ctx, j.uploader, j.logBucket, key); err != nil {
			rl.Logger.Warn().Err(err).Msg("Couldn't archive the run log")
		}
	}

	return jobErr
}
