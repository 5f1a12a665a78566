package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wrstats/api/cache"
	"wrstats/api/middleware"
	"wrstats/api/modules"
	"wrstats/api/routes"
	"wrstats/pkg/config"
	"wrstats/pkg/database"
	"wrstats/pkg/logger"
	"wrstats/pkg/redis"
	"wrstats/pkg/telegram"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fx.New(
		fx.Provide(config.Load),
		fx.Provide(logger.New),
		fx.Provide(provideDatabase),
		fx.Provide(provideTierlistCache),
		fx.Provide(provideModule),
		fx.Invoke(runServer),
		fx.NopLogger,
	).Run()
}

// Open the database and bring the schema up to date.
func provideDatabase(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return database.Close(db)
		},
	})

	return db, nil
}

// The API keeps working without Redis, only uncached.
func provideTierlistCache(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) cache.TierlistCache {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr()).Msg("Redis unavailable, tierlist cache disabled")
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return cache.NewTierlistCache(client)
}

func provideModule(db *gorm.DB, tierlistCache cache.TierlistCache, cfg *config.Config) *modules.Module {
	return modules.NewModule(&modules.ModuleDependencies{
		DB:            db,
		TierlistCache: tierlistCache,
		Config:        cfg,
	})
}

func runServer(lc fx.Lifecycle, module *modules.Module, cfg *config.Config, log zerolog.Logger) {
	if cfg.Environment != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID(log))

	router := routes.NewRouter(engine, cfg.Server.CacheControl)
	router.SetupRoutes(module.Handlers()...)

	if cfg.Quiz.BotToken == "" {
		log.Warn().Msg("TG_BOT_TOKEN is not set, every quiz request will be rejected")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", telegram.InitDataHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router.Engine()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
