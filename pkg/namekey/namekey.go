// Copyright (c) 2026 The Oratio Project. All rights reserved.

// Package namekey normalizes character and work names into stable lookup keys.
//
// # Usage
//
// Corpus files mix precomposed and combining Unicode forms for transliterated
// Greek names ("Achilleús" can be encoded two ways). [From] produces the
// canonical form used as registry and instance-cache key; [Fold] additionally
// strips accents and case for user-facing search.
package namekey

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From returns the canonical key for a name: NFC-normalized, with
// surrounding whitespace trimmed and internal runs collapsed to one space.
//
// Two names that differ only in Unicode encoding or incidental whitespace
// map to the same key; visibly distinct names never collide.
func From(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Fold returns an accent- and case-insensitive form of the name, for
// search filters ("kalypso" matches "Kalypsō").
//
// # Transformation Pipeline
//
// 1. Decomposes to NFD (é → e + combining acute).
// 2. Removes combining marks.
// 3. Lower-cases and collapses whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	return strings.Join(strings.Fields(result), " ")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
