// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package constants centralizes the timeouts, limits, and cross-cutting
// keys shared between the platform layers, so no magic number lives inside
// business logic.
package constants

import "time"

// # Metadata

const (
	AppName    = "oratio-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout bounds reading one full request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout bounds writing one full response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is how long a keep-alive connection may sit idle.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout bounds reading the request headers alone.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the sustained requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the token-bucket burst capacity.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often idle IP buckets are reaped.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is the idle time after which an IP bucket is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixStats = "stats:summary:"
)
