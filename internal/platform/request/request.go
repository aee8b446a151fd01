// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package request wraps the router's URL-parameter extraction so handlers
// get typed values and a uniform validation error.
package requestutil

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oratiodb/oratio/internal/platform/apperr"
)

// IntParam parses a named URL parameter as an integer. A missing or
// malformed value yields a VALIDATION_ERROR naming the parameter.
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil {
		return 0, apperr.ValidationError("Invalid numeric parameter", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return value, nil
}
