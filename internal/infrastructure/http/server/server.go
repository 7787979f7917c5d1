// Package server assembles the gin engine and HTTP server
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/infrastructure/config"
	"github.com/j4rl/barcraft/internal/infrastructure/http/handlers"
	"github.com/j4rl/barcraft/internal/infrastructure/http/middleware"
	"github.com/j4rl/barcraft/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	engine *gin.Engine
	server *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	mw *middleware.Middleware,
	drinkService inbound.DrinkService,
	pantryService inbound.PantryService,
	userService inbound.UserService,
	aiService inbound.AIService,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.Server.TrustedProxies) > 0 {
		engine.SetTrustedProxies(cfg.Server.TrustedProxies)
	}

	s := &Server{
		config: cfg,
		logger: logger,
		engine: engine,
	}

	s.setupRoutes(mw, drinkService, pantryService, userService, aiService)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures middleware and routes
func (s *Server) setupRoutes(
	mw *middleware.Middleware,
	drinkService inbound.DrinkService,
	pantryService inbound.PantryService,
	userService inbound.UserService,
	aiService inbound.AIService,
) {
	s.engine.Use(mw.RequestID())
	s.engine.Use(mw.Logger())
	s.engine.Use(mw.Recovery())
	s.engine.Use(mw.Security())
	s.engine.Use(mw.RateLimit())

	s.engine.GET("/health", s.handleHealth)
	if s.config.Server.EnableMetrics {
		s.engine.GET("/metrics", mw.MetricsHandler())
	}

	authHandlers := handlers.NewAuthHandlers(userService, s.logger)
	drinkHandlers := handlers.NewDrinkHandlers(drinkService, s.logger)
	pantryHandlers := handlers.NewPantryHandlers(pantryService, s.logger)
	adminHandlers := handlers.NewAdminHandlers(userService, s.logger)
	aiHandlers := handlers.NewAIHandlers(aiService, s.logger)

	v1 := s.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)
	auth.POST("/password-reset", authHandlers.RequestPasswordReset)

	v1.GET("/drinks", drinkHandlers.List)
	v1.GET("/drinks/:id", drinkHandlers.Get)
	v1.GET("/ingredients", drinkHandlers.ListIngredients)
	v1.GET("/ai/status", aiHandlers.Status)

	authed := v1.Group("", mw.RequireAuth())
	authed.GET("/me", authHandlers.Me)
	authed.PUT("/me/language", authHandlers.UpdateLanguage)
	authed.POST("/drinks", drinkHandlers.Create)
	authed.GET("/pantry", pantryHandlers.Get)
	authed.PUT("/pantry", pantryHandlers.Update)
	authed.GET("/pantry/matches", pantryHandlers.Matches)
	authed.POST("/ai/suggest", aiHandlers.Suggest)
	authed.DELETE("/drinks/:id", mw.RequireAdmin(), drinkHandlers.Delete)
	authed.PUT("/drinks/:id/classic", mw.RequireAdmin(), drinkHandlers.SetClassic)

	admin := v1.Group("/admin", mw.RequireAuth(), mw.RequireAdmin())
	admin.GET("/users", adminHandlers.ListUsers)
	admin.POST("/users/:id/approve", adminHandlers.ApproveUser)
	admin.PUT("/users/:id/admin", adminHandlers.SetAdmin)
	admin.DELETE("/users/:id", adminHandlers.DeleteUser)
	admin.GET("/reset-requests", adminHandlers.ListResetRequests)
	admin.GET("/stats", drinkHandlers.Stats)
}

// handleHealth reports liveness
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    s.config.App.Name,
		"version": s.config.App.Version,
	})
}

// Engine exposes the router, mainly for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
