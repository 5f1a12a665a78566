package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"wrstats/api/filters"
	tierlistservice "wrstats/api/services/tierlist"
)

var tierlistParams filters.StatsQueryParams

var tierlistCmd = &cobra.Command{
	Use:   "tierlist",
	Short: "Print the tierlist of a rank and lane",
	Args:  cobra.NoArgs,
	RunE:  runTierlist,
}

func init() {
	tierlistCmd.Flags().StringVar(&tierlistParams.Rank, "rank", "", "rank bucket (default diamondPlus)")
	tierlistCmd.Flags().StringVar(&tierlistParams.Lane, "lane", "", "lane (default top)")
	tierlistCmd.Flags().StringVar(&tierlistParams.Date, "date", "", "day, YYYY-MM-DD (default latest)")
	tierlistCmd.Flags().StringVar(&tierlistParams.Lang, "lang", filters.DefaultLang, "locale of the champion names")
}

func runTierlist(cmd *cobra.Command, args []string) error {
	filter, err := filters.NewTierlistFilter(&tierlistParams)
	if err != nil {
		return err
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	// Always read from the store, never from the response cache.
	service := tierlistservice.NewTierlistService(&tierlistservice.TierlistServiceDeps{DB: env.db})

	result, err := service.GetTierlist(env.log.WithContext(cmd.Context()), filter)
	if err != nil {
		return err
	}

	return printTierlist(os.Stdout, result)
}
