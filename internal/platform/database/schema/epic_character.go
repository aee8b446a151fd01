package schema

// RefCharacterTable represents the 'epic.character' table
type RefCharacterTable struct {
	Table     string
	ID        string
	Name      string
	Being     string
	Number    string
	Gender    string
	WD        string
	Manto     string
	TT        string
	Notes     string
	CreatedAt string
}

// RefCharacter is the schema definition for epic.character
var RefCharacter = RefCharacterTable{
	Table:     "epic.character",
	ID:        "id",
	Name:      "name",
	Being:     "being",
	Number:    "number",
	Gender:    "gender",
	WD:        "wd",
	Manto:     "manto",
	TT:        "tt",
	Notes:     "notes",
	CreatedAt: "createdat",
}

func (t RefCharacterTable) Columns() []string {
	return []string{t.ID, t.Name, t.Being, t.Number, t.Gender, t.WD, t.Manto, t.TT, t.Notes, t.CreatedAt}
}
