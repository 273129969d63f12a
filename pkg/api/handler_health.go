package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/pkg/database"
	"github.com/talan-labs/cardtriage/pkg/version"
)

// health handles GET /health: database pool stats, grounding corpus size and
// scheduler state.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())

	payload := gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"scheduler": gin.H{
			"running": s.runner.Running(),
		},
	}

	if docs, err := s.documents.Status(ctx); err == nil {
		payload["grounding"] = docs
	}

	if dbErr != nil {
		payload["status"] = "unhealthy"
		payload["error"] = dbErr.Error()
		c.JSON(http.StatusServiceUnavailable, payload)
		return
	}

	c.JSON(http.StatusOK, payload)
}
