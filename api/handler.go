// Package api provides the HTTP handlers for the decision-support API.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/casve-tools/decision-api/llm"
	"github.com/casve-tools/decision-api/store"
)

// Version is reported by the liveness endpoint.
const Version = "1.0.0"

// Handler handles HTTP requests.
type Handler struct {
	store     store.Store
	generator llm.Generator
	log       *zap.SugaredLogger
}

// NewHandler creates a new handler.
func NewHandler(store store.Store, generator llm.Generator, log *zap.SugaredLogger) *Handler {
	return &Handler{
		store:     store,
		generator: generator,
		log:       log,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/generate-options", h.GenerateOptions)
	e.POST("/api/save-report", h.SaveReport)

	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

// Root returns liveness status.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "CASVE Decision Support API",
		"status":  "running",
		"version": Version,
	})
}

// Health returns readiness status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
