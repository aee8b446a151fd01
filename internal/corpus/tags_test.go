package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestParseTags_DoubtFlag parses the short form "lam;req?" into a lament
without doubt and a request with doubt.
*/
func TestParseTags_DoubtFlag(t *testing.T) {
	tags, errs := ParseTags("lam;req?", false)

	require.Empty(t, errs)
	require.Len(t, tags, 2)

	assert.Equal(t, "lam", tags[0].Type)
	assert.False(t, tags[0].Doubt)
	assert.Equal(t, "req", tags[1].Type)
	assert.True(t, tags[1].Doubt)
}

func TestParseTags_Strict_UnknownToken(t *testing.T) {
	tags, errs := ParseTags("lam;zzz", false)

	require.Len(t, errs, 1)
	assert.Equal(t, "short_type", errs[0].Field)
	assert.Equal(t, "zzz", errs[0].Raw)

	// The recognized token still parses; the caller decides whether the
	// errors reject the row.
	require.Len(t, tags, 1)
	assert.Equal(t, "lam", tags[0].Type)
}

func TestParseTags_Lenient_UnknownToken(t *testing.T) {
	tags, errs := ParseTags("zzz?", true)

	require.Empty(t, errs)
	require.Len(t, tags, 1)
	assert.Equal(t, "und", tags[0].Type)
	assert.True(t, tags[0].Doubt)
}

func TestParseTags_EmptyAndWhitespace(t *testing.T) {
	tags, errs := ParseTags("", false)
	assert.Empty(t, tags)
	assert.Empty(t, errs)

	tags, errs = ParseTags(" ; ; ", false)
	assert.Empty(t, tags)
	assert.Empty(t, errs)
}

func TestParseTags_CaseInsensitive(t *testing.T) {
	tags, errs := ParseTags("LAM; Que ?", false)

	require.Empty(t, errs)
	require.Len(t, tags, 2)
	assert.Equal(t, "lam", tags[0].Type)
	assert.Equal(t, "que", tags[1].Type)
	assert.True(t, tags[1].Doubt)
}
