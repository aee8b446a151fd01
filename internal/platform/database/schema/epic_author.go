package schema

// RefAuthorTable represents the 'epic.author' table
type RefAuthorTable struct {
	Table     string
	ID        string
	Name      string
	WD        string
	URN       string
	CreatedAt string
}

// RefAuthor is the schema definition for epic.author
var RefAuthor = RefAuthorTable{
	Table:     "epic.author",
	ID:        "id",
	Name:      "name",
	WD:        "wd",
	URN:       "urn",
	CreatedAt: "createdat",
}

func (t RefAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.WD, t.URN, t.CreatedAt}
}
