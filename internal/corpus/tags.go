package corpus

import (
	"strings"

	"github.com/oratiodb/oratio/internal/core/speech"
	"github.com/oratiodb/oratio/internal/corpus/vocab"
)

// ParseTags splits a semicolon-delimited short-tag string into tag
// values. A trailing "?" on a token sets the doubt flag. In strict mode
// an unknown token is a field error; in lenient mode it maps to the
// "und" sentinel.
//
// Parsing is pure: callers attach the returned tags only after the
// owning speech commits.
func ParseTags(raw string, lenient bool) ([]speech.Tag, []*FieldError) {
	var tags []speech.Tag
	var errs []*FieldError

	for _, token := range strings.Split(raw, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		doubt := strings.HasSuffix(token, "?")
		code := strings.TrimSpace(strings.TrimSuffix(token, "?"))

		canonical, ok := vocab.TagType.Canonical(code)
		if !ok {
			if !lenient {
				errs = append(errs, &FieldError{Field: "short_type", Raw: token, Reason: "not in tag vocabulary"})
				continue
			}
			canonical = vocab.TagUndefined
		}

		tags = append(tags, speech.Tag{Type: canonical, Doubt: doubt})
	}

	return tags, errs
}
