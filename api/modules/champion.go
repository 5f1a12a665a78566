package modules

import (
	"wrstats/api/handlers"
	championservice "wrstats/api/services/champion"
	historyservice "wrstats/api/services/history"
)

func initializeChampionHandler(deps *ModuleDependencies) *handlers.ChampionHandler {
	championDeps := &championservice.ChampionServiceDeps{
		DB: deps.DB,
	}

	championService := championservice.NewChampionService(championDeps)

	championHandlerDeps := &handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}

	return handlers.NewChampionHandler(championHandlerDeps)
}

func initializeHistoryHandler(deps *ModuleDependencies) *handlers.HistoryHandler {
	historyService := historyservice.NewHistoryService(&historyservice.HistoryServiceDeps{
		DB: deps.DB,
	})

	return handlers.NewHistoryHandler(&handlers.HistoryHandlerDependencies{
		HistoryService: historyService,
	})
}
