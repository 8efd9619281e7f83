package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/estatehub/estatehub/internal/middleware"
	"github.com/estatehub/estatehub/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes. Public
// modules are always reachable; protected modules sit behind bearer
// authentication when it is enabled.
type RouteDeps struct {
	PublicModules    []Module
	ProtectedModules []Module
	DB               *gorm.DB
	AuthEnabled      bool
	JWTSecret        string
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.PublicModules)+len(deps.ProtectedModules) == 0 {
		return errors.New("at least one module is required")
	}
	if deps.AuthEnabled && deps.JWTSecret == "" {
		return errors.New("jwt secret is required when auth is enabled")
	}

	r.GET("/health", healthHandler(deps.DB))

	api := r.Group("/api/v1")
	for i, m := range deps.PublicModules {
		if m == nil {
			return fmt.Errorf("public module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	protected := api
	if deps.AuthEnabled {
		protected = api.Group("")
		protected.Use(middleware.RequireAuth(deps.JWTSecret))
	}
	for i, m := range deps.ProtectedModules {
		if m == nil {
			return fmt.Errorf("protected module at index %d is nil", i)
		}
		m.RegisterRoutes(protected)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler returns a handler that pings the database and reports status.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		status := "ok"
		code := http.StatusOK

		if db == nil {
			dbStatus = "error"
		} else if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := sqlDB.PingContext(ctx); err != nil {
				dbStatus = "error"
			}
		}

		if dbStatus != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"database": dbStatus,
			},
		})
	}
}

func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg.Fail(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
	}
}
