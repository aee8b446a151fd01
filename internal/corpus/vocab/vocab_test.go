package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oratiodb/oratio/internal/corpus/vocab"
)

func TestSet_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		set   *vocab.Set
		raw   string
		want  string
		found bool
	}{
		{"exact", vocab.Being, "mortal", "mortal", true},
		{"case_folded", vocab.Being, "MORTAL", "mortal", true},
		{"canonical_casing_restored", vocab.SpeechType, "d", "D", true},
		{"non_member", vocab.Being, "undead", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.set.Canonical(tt.raw)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_Values_Order(t *testing.T) {
	assert.Equal(t, []string{"greek", "latin"}, vocab.Language.Values())
	assert.Equal(t, []string{"S", "M", "D", "G"}, vocab.SpeechType.Values())
}

func TestTagType_ContainsSentinel(t *testing.T) {
	assert.True(t, vocab.TagType.Contains(vocab.TagUndefined))
	assert.Equal(t, "Undefined", vocab.TagType.Label(vocab.TagUndefined))
}
