package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/pkg/services"
	"github.com/talan-labs/cardtriage/pkg/trello"
)

// addLabelRequest is the body of POST /card/:cardId/add-label.
type addLabelRequest struct {
	BoardID          string `json:"board_id" binding:"required"`
	CriticalityLevel string `json:"criticality_level" binding:"required"`
	Token            string `json:"token"`
}

// addLabel handles POST /api/trello/card/:cardId/add-label.
func (s *Server) addLabel(c *gin.Context) {
	var req addLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if trello.PriorityLabelName(req.CriticalityLevel) == "" {
		abortWithError(c, http.StatusBadRequest, "criticality_level must be HIGH, MEDIUM or LOW")
		return
	}

	token, err := s.resolveToken(c, req.Token, req.BoardID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	cardID := c.Param("cardId")
	if err := s.board.ApplyPriorityLabel(c.Request.Context(), cardID, req.BoardID, req.CriticalityLevel, token); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"card_id":           cardID,
		"criticality_level": req.CriticalityLevel,
	}))
}

// addCommentRequest is the body of POST /card/:cardId/add-comment.
type addCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
	Token   string `json:"token" binding:"required"`
}

// addComment handles POST /api/trello/card/:cardId/add-comment. The agent
// prefix is applied by the board client.
func (s *Server) addComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cardID := c.Param("cardId")
	if err := s.board.AddComment(c.Request.Context(), cardID, req.Comment, req.Token); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"card_id": cardID}))
}

// moveCardRequest is the body of PUT /card/:cardId/move.
type moveCardRequest struct {
	NewListID string `json:"new_list_id" binding:"required"`
	Token     string `json:"token" binding:"required"`
}

// moveCard handles PUT /api/trello/card/:cardId/move.
func (s *Server) moveCard(c *gin.Context) {
	var req moveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cardID := c.Param("cardId")
	if err := s.board.MoveCard(c.Request.Context(), cardID, req.NewListID, req.Token); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"card_id":     cardID,
		"new_list_id": req.NewListID,
	}))
}

// resolveToken returns the request token, falling back to the active config
// of boardID. No token anywhere is a validation error.
func (s *Server) resolveToken(c *gin.Context, token, boardID string) (string, error) {
	if token != "" {
		return token, nil
	}
	if boardID == "" {
		return "", services.NewValidationError("token", "required")
	}
	cfg, err := s.configs.ActiveForBoard(c.Request.Context(), boardID)
	if err != nil {
		return "", services.NewValidationError("token", "required (no subscription found for board)")
	}
	decrypted, err := s.configs.DecryptedToken(cfg)
	if err != nil {
		return "", err
	}
	if decrypted == "" {
		return "", services.NewValidationError("token", "required (subscription has no token)")
	}
	return decrypted, nil
}
