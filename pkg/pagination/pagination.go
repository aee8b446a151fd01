// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package pagination implements page-based navigation for API list
// endpoints: parsing "page" and "limit" query parameters and building the
// metadata block of the list response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the client names none.
	DefaultLimit = 20
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from Page and Limit.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds the metadata block, deriving TotalPages from the total
// row count and the page size.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" from the query string. Missing,
// malformed, or out-of-range values are clamped to the defaults rather
// than rejected.
func FromRequest(r *http.Request) Params {
	page := intQuery(r, "page", DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := intQuery(r, "limit", DefaultLimit)
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
