package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/talan-labs/cardtriage/pkg/models"
)

// parseListQuery reads the shared pagination, filter and ordering query
// parameters of the listing endpoints.
func parseListQuery(c *gin.Context) (page, perPage int, filters []models.Filter, orderBy, orderDirection string, err error) {
	page = models.DefaultPage
	if v := c.Query("page"); v != "" {
		p, convErr := strconv.Atoi(v)
		if convErr != nil || p < 1 {
			return 0, 0, nil, "", "", fmt.Errorf("page must be a positive integer")
		}
		page = p
	}

	perPage = models.DefaultPerPage
	if v := c.Query("perPage"); v != "" {
		pp, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, 0, nil, "", "", fmt.Errorf("perPage must be an integer")
		}
		perPage = models.NormalizePerPage(pp)
	}

	for _, raw := range c.QueryArray("filters[]") {
		filter, parseErr := models.ParseFilter(raw)
		if parseErr != nil {
			return 0, 0, nil, "", "", parseErr
		}
		filters = append(filters, filter)
	}

	return page, perPage, filters, c.Query("orderBy"), c.Query("orderDirection"), nil
}

// listSessions handles GET /api/analyses.
func (s *Server) listSessions(c *gin.Context) {
	page, perPage, filters, orderBy, orderDirection, err := parseListQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.sessions.List(c.Request.Context(), models.ListSessionsRequest{
		Page:           page,
		PerPage:        perPage,
		Filters:        filters,
		OrderBy:        orderBy,
		OrderDirection: orderDirection,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"data": list.Items,
		"meta": models.ListMeta{Pagination: list.Pagination},
	}))
}

// listTickets handles GET /api/tickets.
func (s *Server) listTickets(c *gin.Context) {
	page, perPage, filters, orderBy, orderDirection, err := parseListQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	analyseID := 0
	if v := c.Query("analyse_id"); v != "" {
		id, convErr := strconv.Atoi(v)
		if convErr != nil || id < 1 {
			abortWithError(c, http.StatusBadRequest, "analyse_id must be a positive integer")
			return
		}
		analyseID = id
	}

	list, err := s.tickets.List(c.Request.Context(), models.ListTicketsRequest{
		Page:           page,
		PerPage:        perPage,
		Filters:        filters,
		OrderBy:        orderBy,
		OrderDirection: orderDirection,
		AnalyseID:      analyseID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"data": list.Items,
		"meta": models.ListMeta{Pagination: list.Pagination},
	}))
}

// ticketHistory handles GET /api/tickets/:ticketId/analysis/history.
func (s *Server) ticketHistory(c *gin.Context) {
	entries, err := s.tickets.History(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"ticket_id": c.Param("ticketId"),
		"history":   entries,
		"count":     len(entries),
	}))
}

// ticketAnalysis handles GET /api/tickets/:ticketId/analysis: the latest
// cached verdict.
func (s *Server) ticketAnalysis(c *gin.Context) {
	result, err := s.tickets.LatestAnalysis(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{
		"ticket_id": c.Param("ticketId"),
		"analysis":  result,
	}))
}

// reanalyzeTicket handles POST /api/tickets/:ticketId/reanalyze.
func (s *Server) reanalyzeTicket(c *gin.Context) {
	result, err := s.reanalysis.Reanalyze(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, success(gin.H{"reanalysis": result}))
}
