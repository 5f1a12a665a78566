package routes

import (
	"github.com/gin-gonic/gin"
	"wrstats/api/handlers"
	"wrstats/api/middleware"
)

type Router struct {
	engine       *gin.Engine
	api          *gin.RouterGroup
	cacheControl string
}

// NewRouter creates the /api/v1 router.
// cacheControl is sent on the public read endpoints.
func NewRouter(engine *gin.Engine, cacheControl string) *Router {
	return &Router{
		api:          engine.Group("/api/v1"),
		engine:       engine,
		cacheControl: cacheControl,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.TierlistHandler:
			r.registerTierlistHandler(handler)
		case *handlers.HistoryHandler:
			r.registerHistoryHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.QuizHandler:
			r.registerQuizHandler(handler)
		case *handlers.WebappHandler:
			r.registerWebappHandler(handler)
		}
	}
}

// Register the tierlist handler.
func (r *Router) registerTierlistHandler(handler *handlers.TierlistHandler) {
	tierlist := r.api.Group("/tierlist", middleware.CacheControl(r.cacheControl))
	{
		tierlist.GET("", handler.GetTierlist)
		tierlist.GET("/bulk", handler.GetBulkTierlist)
	}
}

func (r *Router) registerHistoryHandler(handler *handlers.HistoryHandler) {
	r.api.GET("/champions/history", middleware.CacheControl(r.cacheControl), handler.GetHistory)
	r.api.GET("/updated-at", middleware.CacheControl(r.cacheControl), handler.GetUpdatedAt)
}

func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	r.api.GET("/champions", middleware.CacheControl(r.cacheControl), handler.GetChampions)
}

// Quiz answers are per user, never cached.
func (r *Router) registerQuizHandler(handler *handlers.QuizHandler) {
	quiz := r.api.Group("/quiz", middleware.CacheControl(middleware.NoStore), handler.Auth())
	{
		quiz.GET("/status", handler.GetStatus)
		quiz.POST("/attempt", handler.PostAttempt)
		quiz.GET("/reward", handler.GetReward)
	}
}

func (r *Router) registerWebappHandler(handler *handlers.WebappHandler) {
	r.api.POST("/webapp/open", middleware.CacheControl(middleware.NoStore), handler.PostOpen)
}

// Handler of the underlying engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
