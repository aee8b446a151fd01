// Package vocab defines the controlled vocabularies every free-text corpus
// field is validated against: character being/number/gender, work language,
// speech turn type, and the speech-tag taxonomy.
//
// A [Set] matches case-insensitively and substitutes the canonical casing,
// so downstream code and the database only ever see canonical values.
package vocab

import "strings"

// Choice pairs a stored vocabulary value with its display label.
type Choice struct {
	Value string
	Label string
}

// Set is an ordered, immutable vocabulary.
type Set struct {
	name    string
	choices []Choice
	index   map[string]string // lowercased value -> canonical value
}

// NewSet builds a vocabulary from ordered choices.
func NewSet(name string, choices ...Choice) *Set {
	index := make(map[string]string, len(choices))
	for _, c := range choices {
		index[strings.ToLower(c.Value)] = c.Value
	}
	return &Set{name: name, choices: choices, index: index}
}

// Name returns the vocabulary's identifier, used in diagnostics.
func (s *Set) Name() string { return s.name }

// Values returns the canonical values in declaration order.
func (s *Set) Values() []string {
	values := make([]string, len(s.choices))
	for i, c := range s.choices {
		values[i] = c.Value
	}
	return values
}

// Canonical resolves a raw value case-insensitively to its canonical form.
func (s *Set) Canonical(raw string) (string, bool) {
	canonical, ok := s.index[strings.ToLower(raw)]
	return canonical, ok
}

// Contains reports whether the raw value is a member (case-insensitive).
func (s *Set) Contains(raw string) bool {
	_, ok := s.Canonical(raw)
	return ok
}

// Label returns the display label for a canonical value, or the value
// itself if it is not a member.
func (s *Set) Label(value string) string {
	for _, c := range s.choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// # Character attributes

// Being classifies what kind of entity a character is.
var Being = NewSet("being",
	Choice{"mortal", "Mortal"},
	Choice{"divine", "Divine"},
	Choice{"creature", "Mythical Creature"},
	Choice{"other", "Other"},
)

// Number distinguishes individuals from collectives (choruses, crowds).
var Number = NewSet("number",
	Choice{"individual", "Individual"},
	Choice{"collective", "Collective"},
	Choice{"other", "Other"},
)

// Gender is the grammatical/narrative gender of a character.
var Gender = NewSet("gender",
	Choice{"unknown", "Unknown/not-applicable"},
	Choice{"mixed", "Mixed/non-binary"},
	Choice{"female", "Female"},
	Choice{"male", "Male"},
)

// Permissive defaults applied by the character registry when a cell is
// empty or unparseable.
const (
	DefaultBeing  = "mortal"
	DefaultNumber = "individual"
	DefaultGender = "unknown"
)

// # Work attributes

// Language enumerates corpus languages.
var Language = NewSet("lang",
	Choice{"greek", "Greek"},
	Choice{"latin", "Latin"},
)

// # Speech attributes

// SpeechType is the one-letter turn type. Source cells carry a free word
// ("dialogue"); the field validator collapses it to its first letter.
var SpeechType = NewSet("type",
	Choice{"S", "Soliloquy"},
	Choice{"M", "Monologue"},
	Choice{"D", "Dialogue"},
	Choice{"G", "General"},
)

// TagUndefined is the sentinel tag type assigned in lenient mode when a
// short-tag token is not in the taxonomy.
const TagUndefined = "und"

// TagType is the speech-tag taxonomy (three-letter codes).
var TagType = NewSet("tag",
	Choice{"cha", "Challenge"},
	Choice{"com", "Command"},
	Choice{"con", "Consolation"},
	Choice{"del", "Deliberation"},
	Choice{"des", "Desire and Wish"},
	Choice{"exh", "Exhortation and Self-Exhortation"},
	Choice{"far", "Farewell"},
	Choice{"gre", "Greeting and Reception"},
	Choice{"inf", "Information and Description"},
	Choice{"inv", "Invitation"},
	Choice{"ins", "Instruction"},
	Choice{"lam", "Lament"},
	Choice{"lau", "Praise and Laudation"},
	Choice{"mes", "Message"},
	Choice{"nar", "Narration"},
	Choice{"ora", "Prophecy, Oracular Speech, and Interpretation"},
	Choice{"per", "Persuasion"},
	Choice{"pra", "Prayer"},
	Choice{"que", "Question"},
	Choice{"req", "Request"},
	Choice{"res", "Reply to Question"},
	Choice{"tau", "Taunt"},
	Choice{"thr", "Threat"},
	Choice{"vit", "Vituperation"},
	Choice{"vow", "Promise and Oath"},
	Choice{"war", "Warning"},
	Choice{TagUndefined, "Undefined"},
)
