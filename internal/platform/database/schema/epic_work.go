package schema

// RefWorkTable represents the 'epic.work' table
type RefWorkTable struct {
	Table     string
	ID        string
	AuthorID  string
	Title     string
	Lang      string
	WD        string
	URN       string
	CreatedAt string
}

// RefWork is the schema definition for epic.work
var RefWork = RefWorkTable{
	Table:     "epic.work",
	ID:        "id",
	AuthorID:  "authorid",
	Title:     "title",
	Lang:      "lang",
	WD:        "wd",
	URN:       "urn",
	CreatedAt: "createdat",
}

func (t RefWorkTable) Columns() []string {
	return []string{t.ID, t.AuthorID, t.Title, t.Lang, t.WD, t.URN, t.CreatedAt}
}
