package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oratiodb/oratio/internal/corpus/vocab"
)

/*
TestFieldSpec_Validate covers vocabulary matching, canonical-casing
substitution, empty handling, and the transform hook.
*/
func TestFieldSpec_Validate(t *testing.T) {
	tests := []struct {
		name     string
		spec     FieldSpec
		raw      string
		want     string
		hasError bool
	}{
		{"plain_value", FieldSpec{Name: "name"}, "  Achilles ", "Achilles", false},
		{"required_empty", FieldSpec{Name: "name"}, "   ", "", true},
		{"empty_fill", FieldSpec{Name: "being", Allowed: vocab.Being, AllowEmpty: true, EmptyFill: "mortal"}, "", "mortal", false},
		{"vocab_member", FieldSpec{Name: "lang", Allowed: vocab.Language}, "latin", "latin", false},
		{"vocab_case_insensitive", FieldSpec{Name: "lang", Allowed: vocab.Language}, "GREEK", "greek", false},
		{"vocab_non_member", FieldSpec{Name: "lang", Allowed: vocab.Language}, "sanskrit", "", true},
		{"transform_first_letter", FieldSpec{Name: "type", Allowed: vocab.SpeechType, Transform: FirstLetterUpper}, "dialogue", "D", false},
		{"transform_already_short", FieldSpec{Name: "type", Allowed: vocab.SpeechType, Transform: FirstLetterUpper}, "m", "M", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Validate(tt.raw)

			if tt.hasError {
				require.NotNil(t, err)
				assert.Equal(t, tt.spec.Name, err.Field)
			} else {
				require.Nil(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

/*
TestFieldSpec_Validate_Idempotent checks that a value that already
validates passes through unchanged on a second run.
*/
func TestFieldSpec_Validate_Idempotent(t *testing.T) {
	spec := FieldSpec{Name: "gender", Allowed: vocab.Gender}

	once, err := spec.Validate("Female")
	require.Nil(t, err)

	twice, err := spec.Validate(once)
	require.Nil(t, err)
	assert.Equal(t, once, twice)
}

func TestIntField(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     int
		hasError bool
	}{
		{"plain", "42", 42, false},
		{"padded", " 7 ", 7, false},
		{"empty", "", 0, true},
		{"non_numeric", "abc", 0, true},
		{"negative", "-3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntField("seq", tt.raw)

			if tt.hasError {
				require.NotNil(t, err)
				assert.Equal(t, "seq", err.Field)
			} else {
				require.Nil(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIntFieldOr(t *testing.T) {
	got, err := IntFieldOr("embedded_level", "", 1)
	require.Nil(t, err)
	assert.Equal(t, 1, got)

	// A non-empty, non-numeric cell still fails.
	_, err = IntFieldOr("embedded_level", "abc", 1)
	require.NotNil(t, err)
}

func TestBoolField(t *testing.T) {
	assert.False(t, BoolField(""))
	assert.False(t, BoolField("no"))
	assert.False(t, BoolField("0"))
	assert.True(t, BoolField("x"))
	assert.True(t, BoolField("yes"))
	assert.True(t, BoolField("TRUE"))
}

func TestPartialFlag(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		letter byte
		want   bool
	}{
		{"yes", "yes", 'a', true},
		{"bare_y", "y", 'b', true},
		{"column_letter", "a", 'a', true},
		{"column_letter_b", "B", 'b', true},
		{"wrong_letter", "a", 'b', false},
		{"hedged", "maybe?", 'a', false},
		{"negative", "no", 'a', false},
		{"empty", "", 'a', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, partialFlag(tt.raw, tt.letter))
		})
	}
}

func TestLocus(t *testing.T) {
	got, err := Locus("from_line", "12", "45")
	require.Nil(t, err)
	assert.Equal(t, "12.45", got)

	// Works without book divisions use a bare line number.
	got, err = Locus("from_line", "", "45")
	require.Nil(t, err)
	assert.Equal(t, "45", got)

	_, err = Locus("from_line", "12", "")
	require.NotNil(t, err)
	assert.Equal(t, "from_line", err.Field)
}
