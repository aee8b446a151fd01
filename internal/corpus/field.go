package corpus

import (
	"strconv"
	"strings"

	"github.com/oratiodb/oratio/internal/corpus/vocab"
)

// FieldSpec describes how one source column is normalized. Validate is
// pure: it never touches storage, so the same spec serves every stage and
// is testable in isolation.
type FieldSpec struct {
	Name       string
	Allowed    *vocab.Set
	AllowEmpty bool
	EmptyFill  string
	Transform  func(string) string
}

// Validate normalizes a raw cell against the field spec. The raw value is
// whitespace-trimmed, transformed, then matched case-insensitively
// against the vocabulary; the vocabulary's canonical casing is
// substituted on match.
func (spec FieldSpec) Validate(raw string) (string, *FieldError) {
	value := strings.TrimSpace(raw)

	if value == "" {
		if spec.AllowEmpty {
			return spec.EmptyFill, nil
		}
		return "", &FieldError{Field: spec.Name, Raw: raw, Reason: "value required"}
	}

	if spec.Transform != nil {
		value = spec.Transform(value)
	}

	if spec.Allowed != nil {
		canonical, ok := spec.Allowed.Canonical(value)
		if !ok {
			return "", &FieldError{Field: spec.Name, Raw: raw, Reason: "not in " + spec.Allowed.Name() + " vocabulary"}
		}
		return canonical, nil
	}

	return value, nil
}

// ValidateOr normalizes like Validate but substitutes a default instead
// of failing, used for the permissive character-attribute columns.
func (spec FieldSpec) ValidateOr(raw, fallback string) string {
	value, err := spec.Validate(raw)
	if err != nil {
		return fallback
	}
	return value
}

// IntField parses a cell as a non-negative integer.
func IntField(name, raw string) (int, *FieldError) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, &FieldError{Field: name, Raw: raw, Reason: "value required"}
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, &FieldError{Field: name, Raw: raw, Reason: "not a non-negative integer"}
	}
	return n, nil
}

// IntFieldOr parses a cell as a non-negative integer, substituting a
// default for an empty cell. A non-empty, non-numeric cell still fails.
func IntFieldOr(name, raw string, fallback int) (int, *FieldError) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return IntField(name, raw)
}

// BoolField interprets the loose truthy markers used in the source files.
// Empty cells are false.
func BoolField(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "no", "false", "n":
		return false
	default:
		return true
	}
}

// FirstLetterUpper collapses a free word to its upper-cased first letter,
// used for the turn-type column ("dialogue" matches "D").
func FirstLetterUpper(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1])
}

// partialFlag interprets one partial-line cell. Only a "y" prefix or the
// column's own letter affirms the flag; any other marker leaves it unset.
func partialFlag(raw string, letter byte) bool {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return false
	}
	return value[0] == 'y' || value[0] == letter
}

// Locus joins an optional book prefix with a line number into the
// "book.line" citation form, or a bare line when the work has no book
// divisions.
func Locus(name, book, line string) (string, *FieldError) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", &FieldError{Field: name, Raw: line, Reason: "line number required"}
	}

	book = strings.TrimSpace(book)
	if book == "" {
		return line, nil
	}
	return book + "." + line, nil
}
