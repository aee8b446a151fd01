package speech

import "time"

// Role names the three ways a character instance can participate in a
// speech.
type Role string

const (
	RoleSpeaker   Role = "speaker"
	RoleAddressee Role = "addressee"
	RoleBystander Role = "bystander"
)

// RoleRef is a lightweight view of a character instance attached to a
// speech, used in API responses instead of the full instance record.
type RoleRef struct {
	InstanceID int    `json:"instance_id"`
	Name       string `json:"name"`
}

// Speech is one uninterrupted turn of direct discourse.
//
// Seq is a global reading-order ordinal assigned during ingestion. Part
// numbers the turn within its cluster and is unique per cluster. Level is
// the embedding depth: 1 for speech the narrator reports directly, 2 for
// speech quoted inside a level-1 speech, and so on.
type Speech struct {
	ID             int       `json:"id"`
	ClusterID      int       `json:"cluster_id"`
	WorkID         int       `json:"work_id"`
	Type           string    `json:"type"`
	Seq            int       `json:"seq"`
	Part           int       `json:"part"`
	FirstLine      string    `json:"first_line"`
	LastLine       string    `json:"last_line"`
	Level          int       `json:"level"`
	PartialA       bool      `json:"partial_a"` // Begins mid-line
	PartialB       bool      `json:"partial_b"` // Ends mid-line
	SpeakerNotes   *string   `json:"speaker_notes,omitempty"`
	AddresseeNotes *string   `json:"addressee_notes,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"-"`

	// Populated by read queries.
	Speakers   []RoleRef `json:"speakers,omitempty"`
	Addressees []RoleRef `json:"addressees,omitempty"`
	Bystanders []RoleRef `json:"bystanders,omitempty"`
	Tags       []*Tag    `json:"tags,omitempty"`
}

// Cluster groups the consecutive turns of one conversation.
//
// Seq is nil until the post-ingestion sequencer assigns first-appearance
// ordinals. Level mirrors the embedding depth of the cluster's members.
type Cluster struct {
	ID        int       `json:"id"`
	Seq       *int      `json:"seq"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"-"`
}

// Tag is one rhetorical-function label on a speech. Doubt marks an
// uncertain attribution (a trailing "?" in the source).
type Tag struct {
	ID        int       `json:"id"`
	SpeechID  int       `json:"-"`
	Type      string    `json:"type"`
	Doubt     bool      `json:"doubt"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// Filter holds the parameters for a paginated speech search.
type Filter struct {
	WorkID      int
	ClusterID   int
	Type        string
	SpeakerID   int // Instance id appearing as speaker
	AddresseeID int // Instance id appearing as addressee
	TagType     string
}

// Global field names for validation
const (
	FieldType = "type"
	FieldTag  = "tag"
)
