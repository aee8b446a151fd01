// Copyright (c) 2026 The Oratio Project. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oratiodb/oratio/internal/platform/ctxutil"
)

/*
TestRequestID verifies round-tripping of the request ID through a context.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()

	// Missing value falls back to empty string
	assert.Equal(t, "", ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger verifies logger storage and the default fallback.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger, the default logger is returned
	require.NotNil(t, ctxutil.GetLogger(ctx))

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, custom)

	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}
