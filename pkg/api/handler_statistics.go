package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// statisticsHandler handles GET /api/analysis/statistics.
func (s *Server) statisticsHandler(c *gin.Context) {
	stats, err := s.statistics.Global(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"statistics": stats}))
}

// cacheStatus handles GET /api/analysis/cache/status.
func (s *Server) cacheStatus(c *gin.Context) {
	status, err := s.cache.Status(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	ratio := 0.0
	if status.TotalTickets > 0 {
		ratio = float64(status.CachedTickets) / float64(status.TotalTickets)
	}
	c.JSON(http.StatusOK, success(gin.H{
		"cache":       status,
		"cache_ratio": ratio,
	}))
}

// cacheClearRequest is the body of POST /api/analysis/cache/clear. An
// omitted ticket_id clears every cached verdict.
type cacheClearRequest struct {
	TicketID string `json:"ticket_id"`
}

// cacheClear handles POST /api/analysis/cache/clear.
func (s *Server) cacheClear(c *gin.Context) {
	var req cacheClearRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	if req.TicketID != "" {
		if err := s.cache.Clear(c.Request.Context(), req.TicketID); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, success(gin.H{
			"ticket_id":     req.TicketID,
			"cleared_count": 1,
		}))
		return
	}

	cleared, err := s.cache.ClearAll(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, success(gin.H{"cleared_count": cleared}))
}
