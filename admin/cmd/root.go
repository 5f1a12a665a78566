package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"wrstats/pkg/config"
	"wrstats/pkg/database"
	"wrstats/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "wrstats-admin",
	Short:         "Maintenance tool of the Wild Rift stats store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tierlistCmd)
}

// Shared setup of the commands that touch the store.
type environment struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func setup() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr}, cfg.Log.Level)

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &environment{cfg: cfg, log: log, db: db}, nil
}

func (e *environment) close() {
	if err := database.Close(e.db); err != nil {
		e.log.Warn().Err(err).Msg("Couldn't close the database")
	}
}
