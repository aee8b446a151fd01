package schema

// RefSpeechClusterTable represents the 'epic.speech_cluster' table.
//
// Seq is NULL until the post-ingestion sequencer assigns first-appearance
// ordinals; afterwards it is immutable.
type RefSpeechClusterTable struct {
	Table     string
	ID        string
	Seq       string
	Level     string
	CreatedAt string
}

// RefSpeechCluster is the schema definition for epic.speech_cluster
var RefSpeechCluster = RefSpeechClusterTable{
	Table:     "epic.speech_cluster",
	ID:        "id",
	Seq:       "seq",
	Level:     "level",
	CreatedAt: "createdat",
}

func (t RefSpeechClusterTable) Columns() []string {
	return []string{t.ID, t.Seq, t.Level, t.CreatedAt}
}
