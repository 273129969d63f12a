package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/ent"
	"github.com/talan-labs/cardtriage/pkg/services"
)

// camelToSnakeKeys maps the camelCase aliases older clients send to the
// canonical snake_case payload keys.
var camelToSnakeKeys = map[string]string{
	"boardId":        services.ConfigKeyBoardID,
	"boardName":      services.ConfigKeyBoardName,
	"listId":         services.ConfigKeyListID,
	"listName":       services.ConfigKeyListName,
	"targetListId":   services.ConfigKeyTargetListID,
	"targetListName": services.ConfigKeyTargetListName,
}

// normalizeConfigPayload rewrites camelCase keys to snake_case. Snake_case
// wins when both spellings are present.
func normalizeConfigPayload(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if snake, ok := camelToSnakeKeys[k]; ok {
			if _, exists := data[snake]; !exists {
				out[snake] = v
			}
			continue
		}
		out[k] = v
	}
	return out
}

// createConfig handles POST /api/trello/config-board-subscription.
func (s *Server) createConfig(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cfg, err := s.configs.Create(c.Request.Context(), normalizeConfigPayload(data))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, success(gin.H{"config": configResponse(cfg)}))
}

// updateConfig handles PUT /api/trello/config-board-subscription. The payload
// may carry the id alongside the data fields or wrap them in a data object.
func (s *Server) updateConfig(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, ok := intField(raw, "id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, "id is required")
		return
	}

	data, ok := raw["data"].(map[string]any)
	if !ok {
		data = make(map[string]any, len(raw))
		for k, v := range raw {
			if k == "id" {
				continue
			}
			data[k] = v
		}
	}

	cfg, err := s.configs.Update(c.Request.Context(), id, normalizeConfigPayload(data))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"config": configResponse(cfg)}))
}

// listConfigs handles GET /api/trello/config-board-subscription. Tokens are
// masked in the response.
func (s *Server) listConfigs(c *gin.Context) {
	configs, err := s.configs.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, configResponse(cfg))
	}
	c.JSON(http.StatusOK, success(gin.H{"configs": out}))
}

// setTargetListRequest is the body of POST .../config-board-subscription/:id/target-list.
type setTargetListRequest struct {
	TargetListID   string `json:"target_list_id"`
	TargetListName string `json:"target_list_name"`

	// camelCase aliases
	TargetListIDAlt   string `json:"targetListId"`
	TargetListNameAlt string `json:"targetListName"`
}

// setTargetList handles POST /api/trello/config-board-subscription/:id/target-list.
func (s *Server) setTargetList(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusBadRequest, "invalid config id")
		return
	}

	var req setTargetListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	targetID := req.TargetListID
	if targetID == "" {
		targetID = req.TargetListIDAlt
	}
	targetName := req.TargetListName
	if targetName == "" {
		targetName = req.TargetListNameAlt
	}

	cfg, err := s.configs.SetTargetList(c.Request.Context(), id, targetID, targetName)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"config": configResponse(cfg)}))
}

func configResponse(cfg *ent.BoardConfig) gin.H {
	return gin.H{
		"id":         cfg.ID,
		"data":       services.Masked(cfg.Data),
		"created_at": cfg.CreatedAt.Format(time.RFC3339),
		"updated_at": cfg.UpdatedAt.Format(time.RFC3339),
	}
}

// intField reads a JSON number or numeric string field as int.
func intField(raw map[string]any, key string) (int, bool) {
	switch v := raw[key].(type) {
	case float64:
		return int(v), true
	case string:
		id, err := strconv.Atoi(v)
		return id, err == nil
	default:
		return 0, false
	}
}

// intParam reads a positive integer route parameter.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	return id, err == nil && id > 0
}
