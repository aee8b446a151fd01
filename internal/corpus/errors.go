// Package corpus implements the batch ingestion pipeline that turns a
// directory of tab-separated source files into the relational catalog:
// authors, works, the character registry, character instances, speeches,
// clusters, and tags.
//
// The pipeline is strictly sequential. Row-level failures are accumulated
// into the run report and never abort the batch; only configuration
// problems (missing input files, unreadable TSV) are fatal.
package corpus

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput marks a fatal configuration failure: a required source
// file is absent from the input directory.
var ErrMissingInput = errors.New("required input file missing")

// FieldError reports that a single cell failed validation.
type FieldError struct {
	Field  string
	Raw    string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Raw)
}

// ResolutionError reports a cross-reference that did not resolve: a work
// pointing at an unknown author, a speaker name absent from the character
// registry, and so on.
type ResolutionError struct {
	Kind string // "author", "work", "character"
	Ref  string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q", e.Kind, e.Ref)
}

// RowErrors accumulates every failure found on one source row, so a
// single diagnostic can list all of them instead of stopping at the
// first.
type RowErrors struct {
	errs []error
}

func (r *RowErrors) Add(err error) {
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

func (r *RowErrors) AddField(err *FieldError) {
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

func (r *RowErrors) HasErrors() bool { return len(r.errs) > 0 }

// Reasons returns one human-readable string per failure.
func (r *RowErrors) Reasons() []string {
	reasons := make([]string, len(r.errs))
	for i, err := range r.errs {
		reasons[i] = err.Error()
	}
	return reasons
}

func (r *RowErrors) Error() string {
	return strings.Join(r.Reasons(), "; ")
}
