package work

import "time"

// Work represents an epic text.
//
// Like authors, works keep the stable integer ids assigned in the corpus
// source files; speech rows refer to works solely by these integers.
type Work struct {
	ID        int       `json:"id"`
	AuthorID  int       `json:"author_id"`
	Title     string    `json:"title"`
	Lang      string    `json:"lang"`
	WD        string    `json:"wd"`  // WikiData ID
	URN       string    `json:"urn"` // CTS URN
	CreatedAt time.Time `json:"-"`

	// AuthorName is populated by read queries joining epic.author.
	AuthorName string `json:"author_name,omitempty"`
}

// LongName returns the conventional citation form, e.g. "Homer Iliad".
// It doubles as the narrative context key for character instances.
func (w *Work) LongName() string {
	if w.AuthorName == "" {
		return w.Title
	}
	return w.AuthorName + " " + w.Title
}

// Filter holds the parameters for a paginated work search.
type Filter struct {
	Query    string // Substring search against title
	Lang     string // Language vocabulary value
	AuthorID int    // Filter by owning author
}

// Global field names for validation
const (
	FieldTitle  = "title"
	FieldLang   = "lang"
	FieldAuthor = "author"
)
