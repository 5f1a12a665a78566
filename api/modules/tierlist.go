package modules

import (
	"wrstats/api/handlers"
	tierlistservice "wrstats/api/services/tierlist"
)

func initializeTierlistHandler(deps *ModuleDependencies) *handlers.TierlistHandler {
	// Initialize the tierlist service and handler.
	tierlistDeps := &tierlistservice.TierlistServiceDeps{
		DB:    deps.DB,
		Cache: deps.TierlistCache,
	}

	tierlistService := tierlistservice.NewTierlistService(tierlistDeps)

	tierlistHandlerDeps := &handlers.TierlistHandlerDependencies{
		TierlistService: tierlistService,
	}

	return handlers.NewTierlistHandler(tierlistHandlerDeps)
}
