package schema

// RefCharacterInstanceTable represents the 'epic.character_instance' table.
//
// (name, context) carries a UNIQUE constraint: instance resolution relies on
// get-or-create semantics over that pair.
type RefCharacterInstanceTable struct {
	Table     string
	ID        string
	CharID    string
	Name      string
	Context   string
	Being     string
	Number    string
	Gender    string
	Anon      string
	Absent    string
	Disguise  string
	Labels    string
	Notes     string
	CreatedAt string
}

// RefCharacterInstance is the schema definition for epic.character_instance
var RefCharacterInstance = RefCharacterInstanceTable{
	Table:     "epic.character_instance",
	ID:        "id",
	CharID:    "charid",
	Name:      "name",
	Context:   "context",
	Being:     "being",
	Number:    "number",
	Gender:    "gender",
	Anon:      "anon",
	Absent:    "absent",
	Disguise:  "disguise",
	Labels:    "labels",
	Notes:     "notes",
	CreatedAt: "createdat",
}

func (t RefCharacterInstanceTable) Columns() []string {
	return []string{t.ID, t.CharID, t.Name, t.Context, t.Being, t.Number, t.Gender, t.Anon, t.Absent, t.Disguise, t.Labels, t.Notes, t.CreatedAt}
}
