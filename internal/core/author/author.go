package author

import "time"

// Author represents an ancient author of an epic text.
//
// IDs are not auto-generated: the corpus source files assign stable integer
// ids that speech files cross-reference, and ingestion preserves them.
type Author struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	WD        string    `json:"wd"`  // WikiData ID
	URN       string    `json:"urn"` // CTS URN
	CreatedAt time.Time `json:"-"`
}

// Filter holds the parameters for a paginated author search.
type Filter struct {
	Query string // Substring search against name
}

// Global field names for validation
const (
	FieldName = "name"
	FieldWD   = "wd"
	FieldURN  = "urn"
)
