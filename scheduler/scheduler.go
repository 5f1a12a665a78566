package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"wrstats/api/cache"
	"wrstats/importer"
	"wrstats/pkg/bucket"
	"wrstats/pkg/config"
	"wrstats/pkg/database"
	"wrstats/pkg/logger"
	"wrstats/pkg/redis"
	"wrstats/scheduler/jobs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("Couldn't initialize the configuration")
	}

	log := logger.New(cfg)

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't connect to the database")
	}
	defer database.Close(db)

	if cfg.Bucket.ImportBucket == "" {
		log.Fatal().Msg("BUCKET_IMPORT_BUCKET is required by the scheduler")
	}
	s3Client := bucket.NewClient(cfg.Bucket)

	// Imports still run without Redis, the cached tierlists just expire on their own.
	var tierlistCache cache.TierlistCache
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, the tierlist cache won't be invalidated")
	} else {
		defer redisClient.Close()
		tierlistCache = cache.NewTierlistCache(redisClient)
	}

	importJobs := jobs.NewImportJobs(&jobs.ImportJobsDeps{
		Importer: importer.NewImporter(&importer.ImporterDeps{
			DB:    db,
			Cache: tierlistCache,
		}),
		Source:    importer.NewBucketSource(s3Client, cfg.Bucket.ImportBucket),
		Uploader:  s3Client,
		LogBucket: cfg.Bucket.LogBucket,
		LogLevel:  cfg.Log.Level,
	})

	log.Info().Msg("Starting scheduler")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	if err := registerJobs(s, importJobs); err != nil {
		log.Fatal().Err(err).Msg("Failed to register the import jobs")
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		if err := s.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Error shutting down scheduler")
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Info().Msg("Shutting down scheduler")
}

// registerJobs adds the daily imports to the scheduler.
func registerJobs(s gocron.Scheduler, importJobs *jobs.ImportJobs) error {
	// The catalog goes first so the new champions have names on the stats import.
	_, err := s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 30, 0),
			),
		),
		gocron.NewTask(importJobs.ImportChampions),
		gocron.WithName("import-champions"),
		gocron.WithTags("import"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("champions import job: %w", err)
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(importJobs.ImportStats),
		gocron.WithName("import-stats"),
		gocron.WithTags("import"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("stats import job: %w", err)
	}

	return nil
}
