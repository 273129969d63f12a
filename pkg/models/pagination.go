package models

import (
	"fmt"
	"strings"
)

// Allowed page sizes for list endpoints; requests outside the set fall back
// to the default.
const (
	DefaultPerPage = 10
	DefaultPage    = 1
)

var allowedPerPage = map[int]bool{5: true, 10: true, 15: true}

// NormalizePerPage clamps a requested page size to the allowed set.
func NormalizePerPage(perPage int) int {
	if allowedPerPage[perPage] {
		return perPage
	}
	return DefaultPerPage
}

// Filter is one parsed "field:op:value" list filter.
type Filter struct {
	Field string
	Op    string
	Value string
}

// ParseFilter splits a raw "field:op:value" expression. The value may itself
// contain colons (ISO timestamps), so only the first two separators split.
func ParseFilter(raw string) (Filter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return Filter{}, fmt.Errorf("malformed filter %q, expected field:op:value", raw)
	}
	return Filter{Field: parts[0], Op: parts[1], Value: parts[2]}, nil
}

// Pagination is the pagination block of list responses.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PerPage     int  `json:"perPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination derives the full pagination block from page inputs and the
// total row count.
func NewPagination(page, perPage, totalItems int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	perPage = NormalizePerPage(perPage)
	totalPages := totalItems / perPage
	if totalItems%perPage != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && totalItems > 0,
	}
}

// ListMeta wraps pagination for the response envelope.
type ListMeta struct {
	Pagination Pagination `json:"pagination"`
}
