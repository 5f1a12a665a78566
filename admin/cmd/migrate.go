package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

// Opening the store already brings the schema up to date.
func runMigrate(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	env.log.Info().Str("database", env.cfg.Database.Database).Msg("Database is up to date")
	return nil
}
