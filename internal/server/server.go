// Package server is a contract stub of the PlayerA admin API for local
// development and end-to-end tests of the CLI.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	db     *gorm.DB
	config *config.StubConfig
	logger zerolog.Logger
}

// New creates a new server instance backed by a seeded in-memory database
func New(cfg *config.Config, zlog zerolog.Logger) (*Server, error) {
	db, err := initDatabase(memoryDSN, zlog)
	if err != nil {
		return nil, err
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}

	if err := seed(db, &cfg.Stub); err != nil {
		return nil, err
	}

	auth.InitializeJWT(cfg.Stub.JWTSecret)

	server := &Server{
		db:     db,
		config: &cfg.Stub,
		logger: zlog,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router.NoRoute(func(c *gin.Context) {
		respondMessage(c, http.StatusNotFound, "Resource not found")
	})

	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	api.POST("/admin/auth/login", s.login)

	admin := api.Group("/admin")
	admin.Use(JWTAuthMiddleware(s.db, s.logger))
	admin.Use(AdminOnlyMiddleware(s.logger))
	{
		admin.GET("/auth/me", s.getCurrentUser)

		admin.GET("/dashboard/stats", s.getDashboardStats)
		admin.GET("/analytics/users", s.getUserAnalytics)

		admin.GET("/users", s.listUsers)
		admin.GET("/users/:id", s.getUser)
		admin.PATCH("/users/:id/status", s.updateUserStatus)
		admin.DELETE("/users/:id", s.deleteUser)

		admin.GET("/venues", s.listVenues)
		admin.GET("/venues/:id", s.getVenue)
		admin.PATCH("/venues/:id/approve", s.approveVenue)
		admin.PATCH("/venues/:id/status", s.updateVenueStatus)
		admin.DELETE("/venues/:id", s.deleteVenue)

		admin.GET("/venue-owners", s.listVenueOwners)
		admin.GET("/venue-owners/:id", s.getVenueOwner)
		admin.PATCH("/venue-owners/:id/status", s.updateVenueOwnerStatus)
		admin.PATCH("/venue-owners/:id/approve", s.approveVenueOwner)

		admin.GET("/bookings", s.listBookings)
		admin.GET("/bookings/:id", s.getBooking)
		admin.PATCH("/bookings/:id/cancel", s.cancelBooking)

		admin.GET("/settings", s.getSettings)
		admin.PATCH("/settings", s.updateSettings)
	}
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

// Handler returns the router, for serving from tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on the configured address until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.config.Addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Error closing database")
		}
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
