package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Filter
		wantErr bool
	}{
		{
			name: "simple",
			raw:  "tickets_count:gte:5",
			want: Filter{Field: "tickets_count", Op: "gte", Value: "5"},
		},
		{
			name: "value with colons",
			raw:  "createdAt:gte:2026-01-02T15:04:05Z",
			want: Filter{Field: "createdAt", Op: "gte", Value: "2026-01-02T15:04:05Z"},
		},
		{
			name: "contains filter",
			raw:  "name:contains:payment",
			want: Filter{Field: "name", Op: "contains", Value: "payment"},
		},
		{name: "missing value", raw: "name:contains", wantErr: true},
		{name: "empty field", raw: ":eq:x", wantErr: true},
		{name: "empty op", raw: "name::x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePerPage(t *testing.T) {
	assert.Equal(t, 5, NormalizePerPage(5))
	assert.Equal(t, 10, NormalizePerPage(10))
	assert.Equal(t, 15, NormalizePerPage(15))
	assert.Equal(t, DefaultPerPage, NormalizePerPage(0))
	assert.Equal(t, DefaultPerPage, NormalizePerPage(7))
	assert.Equal(t, DefaultPerPage, NormalizePerPage(100))
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		totalItems int
		want       Pagination
	}{
		{
			name: "first of three pages", page: 1, perPage: 10, totalItems: 23,
			want: Pagination{CurrentPage: 1, PerPage: 10, TotalPages: 3, TotalItems: 23, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", page: 2, perPage: 10, totalItems: 23,
			want: Pagination{CurrentPage: 2, PerPage: 10, TotalPages: 3, TotalItems: 23, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", page: 3, perPage: 10, totalItems: 23,
			want: Pagination{CurrentPage: 3, PerPage: 10, TotalPages: 3, TotalItems: 23, HasNext: false, HasPrev: true},
		},
		{
			name: "empty set", page: 1, perPage: 10, totalItems: 0,
			want: Pagination{CurrentPage: 1, PerPage: 10, TotalPages: 0, TotalItems: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "exact multiple", page: 1, perPage: 5, totalItems: 10,
			want: Pagination{CurrentPage: 1, PerPage: 5, TotalPages: 2, TotalItems: 10, HasNext: true, HasPrev: false},
		},
		{
			name: "page below one falls back", page: 0, perPage: 10, totalItems: 5,
			want: Pagination{CurrentPage: 1, PerPage: 10, TotalPages: 1, TotalItems: 5, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.perPage, tt.totalItems))
		})
	}
}

func TestIsActionable(t *testing.T) {
	assert.True(t, IsActionable(CriticalityHigh))
	assert.True(t, IsActionable(CriticalityMedium))
	assert.True(t, IsActionable(CriticalityLow))
	assert.False(t, IsActionable(CriticalityOutOfContext))
	assert.False(t, IsActionable(""))
}
