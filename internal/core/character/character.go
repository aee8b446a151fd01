package character

import "time"

// Character is a canonical person (or god, creature, chorus) of the epic
// tradition, independent of any single text.
type Character struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Being     string    `json:"being"`
	Number    string    `json:"number"`
	Gender    string    `json:"gender"`
	WD        string    `json:"wd"`    // WikiData ID
	Manto     string    `json:"manto"` // MANTO entity ID
	TT        string    `json:"tt"`    // ToposText ID
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// Instance is one appearance of a character within a narrative context
// (a work), possibly under an alias, a disguise, or anonymously.
//
// CharID is nil for anonymous instances that resolve to no canonical
// character. (Name, Context) is unique: resolution during ingestion uses
// get-or-create semantics over that pair.
type Instance struct {
	ID        int       `json:"id"`
	CharID    *int      `json:"char_id,omitempty"`
	Name      string    `json:"name"`
	Context   string    `json:"context"`
	Being     string    `json:"being"`
	Number    string    `json:"number"`
	Gender    string    `json:"gender"`
	Anon      bool      `json:"anon"`
	Absent    bool      `json:"absent"`
	Disguise  *string   `json:"disguise,omitempty"`
	Labels    []string  `json:"labels,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`

	// CharName is populated by read queries joining epic.character.
	CharName string `json:"char_name,omitempty"`
}

// Filter holds the parameters for a paginated character search.
type Filter struct {
	Query  string // Substring search against name
	Being  string
	Number string
	Gender string
}

// InstanceFilter holds the parameters for a paginated instance search.
type InstanceFilter struct {
	Query   string // Substring search against name
	Context string // Exact narrative context, e.g. "Homer Iliad"
	CharID  int    // Filter by canonical character
	Anon    *bool
}

// Global field names for validation
const (
	FieldName   = "name"
	FieldBeing  = "being"
	FieldNumber = "number"
	FieldGender = "gender"
)
