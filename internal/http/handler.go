package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"plate-bot/internal/http/middleware"
	"plate-bot/internal/service"
)

type Handler struct {
	registry *service.RegistryService
	log      zerolog.Logger
}

func NewHandler(registry *service.RegistryService, log zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		log:      log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.POST("/reload", h.reloadDataset)
		protected.GET("/stats", h.datasetStats)
	}
}

func (h *Handler) reloadDataset(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok || !principal.IsOperator() {
		c.JSON(http.StatusForbidden, errorResponse("operator role required"))
		return
	}

	h.log.Info().
		Str("user_id", principal.UserID.String()).
		Msg("dataset reload requested via API")

	result, err := h.registry.Reload(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("dataset reload failed")
		c.JSON(http.StatusBadGateway, errorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"snapshot_id": result.SnapshotID,
		"rows":        result.Rows,
		"plates":      result.Plates,
		"phones":      result.Phones,
	})
}

func (h *Handler) datasetStats(c *gin.Context) {
	stats, err := h.registry.Stats()
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, errorResponse("dataset not loaded yet"))
			return
		}
		h.log.Error().Err(err).Msg("failed to read dataset stats")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
