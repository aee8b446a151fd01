// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package ctxkey defines the typed context keys shared by middleware and
// handlers. The unexported key type keeps these entries from colliding
// with any third-party package that also stashes values in the context.
package ctxkey

type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
