// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	aiapp "github.com/j4rl/barcraft/internal/application/ai"
	drinkapp "github.com/j4rl/barcraft/internal/application/drink"
	pantryapp "github.com/j4rl/barcraft/internal/application/pantry"
	userapp "github.com/j4rl/barcraft/internal/application/user"
	"github.com/j4rl/barcraft/internal/infrastructure/ai/openai"
	"github.com/j4rl/barcraft/internal/infrastructure/config"
	"github.com/j4rl/barcraft/internal/infrastructure/http/middleware"
	"github.com/j4rl/barcraft/internal/infrastructure/http/server"
	gormRepo "github.com/j4rl/barcraft/internal/infrastructure/persistence/gorm"
	"github.com/j4rl/barcraft/internal/infrastructure/persistence/memory"
	"github.com/j4rl/barcraft/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/j4rl/barcraft/internal/infrastructure/persistence/redis"
	"github.com/j4rl/barcraft/internal/infrastructure/persistence/sqlite"
	"github.com/j4rl/barcraft/internal/infrastructure/security"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	SecurityModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection for the configured driver
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "postgres" {
			return postgres.Connect(cfg, log)
		}

		logLevel := gormLogger.Warn
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Database, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Database.Seed {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Database),
		)

		return db, nil
	},
)

// CacheModule provides caching, Redis when configured and in-memory otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Host == "" {
			log.Info("No Redis host configured, using in-memory cache")
			return memory.NewCacheRepository(), nil
		}

		client, err := redisrepo.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}

		log.Info("Connected to Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)

		return redisrepo.NewCacheRepository(client, log), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewDrinkRepository,
	gormRepo.NewIngredientRepository,
	gormRepo.NewPantryRepository,
	gormRepo.NewUserRepository,
)

// SecurityModule provides token signing and validation
var SecurityModule = fx.Provide(
	func(cfg *config.Config) *security.TokenService {
		return security.NewTokenService(cfg.Auth)
	},
	func(tokens *security.TokenService) userapp.TokenIssuer {
		return tokens
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	drinkapp.NewDrinkService,
	pantryapp.NewPantryService,
	userapp.NewUserService,
	func(cfg *config.Config, log *zap.Logger) inbound.AIService {
		var generator outbound.DrinkGenerator
		if cfg.AI.Enabled() {
			generator = openai.NewClient(cfg.AI, log)
		}
		return aiapp.NewAIService(generator, cfg.AI.Enabled(), log)
	},
)

// HTTPModule provides the HTTP server and its middleware
var HTTPModule = fx.Provide(
	middleware.New,
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Barcraft",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Barcraft")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
