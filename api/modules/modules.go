package modules

import (
	"gorm.io/gorm"
	"wrstats/api/cache"
	"wrstats/api/handlers"
	"wrstats/pkg/config"
)

// ModuleDependencies are the shared resources of every handler.
// TierlistCache may be nil when Redis is not available.
type ModuleDependencies struct {
	DB            *gorm.DB
	TierlistCache cache.TierlistCache
	Config        *config.Config
}

// Module containing the necessary handlers.
type Module struct {
	TierlistHandler *handlers.TierlistHandler
	HistoryHandler  *handlers.HistoryHandler
	ChampionHandler *handlers.ChampionHandler
	QuizHandler     *handlers.QuizHandler
	WebappHandler   *handlers.WebappHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	return &Module{
		TierlistHandler: initializeTierlistHandler(deps),
		HistoryHandler:  initializeHistoryHandler(deps),
		ChampionHandler: initializeChampionHandler(deps),
		QuizHandler:     initializeQuizHandler(deps),
		WebappHandler:   initializeWebappHandler(deps),
	}
}

// Handlers returns every handler, ready for the router.
func (m *Module) Handlers() []any {
	return []any{
		m.TierlistHandler,
		m.HistoryHandler,
		m.ChampionHandler,
		m.QuizHandler,
		m.WebappHandler,
	}
}
