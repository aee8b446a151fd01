// Copyright (c) 2026 The Oratio Project. All rights reserved.

package namekey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oratiodb/oratio/pkg/namekey"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Achilles", "Achilles"},
		{"surrounding_whitespace", "  Achilles ", "Achilles"},
		{"internal_whitespace", "Trojan   herald", "Trojan herald"},
		// e + combining acute collapses to the precomposed form
		{"combining_form", "Aene\u0301as", "Aenéas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, namekey.From(tt.input))
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Achilles", "achilles"},
		{"strips_macron", "Kalypsō", "kalypso"},
		{"strips_acute", "Aenéas", "aeneas"},
		{"collapses_space", "  Trojan  herald ", "trojan herald"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, namekey.Fold(tt.input))
		})
	}
}

// Folding is idempotent: folding an already-folded name is a no-op.
func TestFold_Idempotent(t *testing.T) {
	once := namekey.Fold("Kalypsō")
	assert.Equal(t, once, namekey.Fold(once))
}
