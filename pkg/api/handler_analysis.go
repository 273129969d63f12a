package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/pkg/models"
)

// analyzeListRequest is the body of POST /board/:boardId/list/:listId/analyze.
// Everything is optional: the active config fills in what the caller omits.
type analyzeListRequest struct {
	Token          string `json:"token"`
	BoardName      string `json:"board_name"`
	ListName       string `json:"list_name"`
	AnalyseBoardID int    `json:"analyse_board_id"`
	Force          bool   `json:"force"`
}

// analyzeList handles POST /api/trello/board/:boardId/list/:listId/analyze.
func (s *Server) analyzeList(c *gin.Context) {
	var req analyzeListRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	report, err := s.orchestrator.Run(c.Request.Context(), models.AnalyzeListRequest{
		BoardID:        c.Param("boardId"),
		ListID:         c.Param("listId"),
		BoardName:      req.BoardName,
		ListName:       req.ListName,
		Token:          req.Token,
		AnalyseBoardID: req.AnalyseBoardID,
		Force:          req.Force,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"analysis": report}))
}

// analyzeCardRequest is the body of POST /card/:cardId/analyze. A missing
// token falls back to the active config of board_id when given.
type analyzeCardRequest struct {
	Token   string `json:"token"`
	BoardID string `json:"board_id"`
}

// analyzeCard handles POST /api/trello/card/:cardId/analyze: an ad-hoc
// evaluation with no session, no history and no board actions.
func (s *Server) analyzeCard(c *gin.Context) {
	var req analyzeCardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	token, err := s.resolveToken(c, req.Token, req.BoardID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	verdict, err := s.orchestrator.AnalyzeCard(c.Request.Context(), c.Param("cardId"), token)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"result": verdict}))
}

// runSweep handles POST /api/analysis/run: one unattended pass over all
// subscribed lists. A pass already in flight answers 409.
func (s *Server) runSweep(c *gin.Context) {
	outcomes, err := s.runner.RunOnce(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"configs_analyzed": len(outcomes),
		"outcomes":         outcomes,
	}))
}
