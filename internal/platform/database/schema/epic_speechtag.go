package schema

// RefSpeechTagTable represents the 'epic.speech_tag' table
type RefSpeechTagTable struct {
	Table     string
	ID        string
	SpeechID  string
	Type      string
	Doubt     string
	Notes     string
	CreatedAt string
}

// RefSpeechTag is the schema definition for epic.speech_tag
var RefSpeechTag = RefSpeechTagTable{
	Table:     "epic.speech_tag",
	ID:        "id",
	SpeechID:  "speechid",
	Type:      "type",
	Doubt:     "doubt",
	Notes:     "notes",
	CreatedAt: "createdat",
}

func (t RefSpeechTagTable) Columns() []string {
	return []string{t.ID, t.SpeechID, t.Type, t.Doubt, t.Notes, t.CreatedAt}
}
