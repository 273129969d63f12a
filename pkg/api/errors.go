package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/pkg/services"
	"github.com/talan-labs/cardtriage/pkg/trello"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
// All error responses use the {status: "error", message} envelope.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		abortWithError(c, http.StatusBadRequest, validErr.Error())
		return
	}
	if errors.Is(err, services.ErrInvalidInput) {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		abortWithError(c, http.StatusNotFound, "resource not found")
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		abortWithError(c, http.StatusConflict, "resource already exists")
		return
	}
	if errors.Is(err, services.ErrAnalysisRunning) {
		abortWithError(c, http.StatusConflict, "analysis run already in progress")
		return
	}

	var apiErr *trello.APIError
	if errors.As(err, &apiErr) {
		abortWithError(c, http.StatusBadGateway, "board API error: "+apiErr.Error())
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	abortWithError(c, http.StatusInternalServerError, "internal server error")
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// success wraps a payload in the {status: "success"} envelope.
func success(payload gin.H) gin.H {
	out := gin.H{"status": "success"}
	for k, v := range payload {
		out[k] = v
	}
	return out
}
