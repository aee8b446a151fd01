// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package pointer removes the take-address-of-literal boilerplate around
// optional struct fields.
package pointer

// To returns a pointer to the provided value, e.g. pointer.To("wd123")
// for a nullable column field.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, or returns the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
