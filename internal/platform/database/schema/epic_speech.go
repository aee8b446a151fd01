package schema

// RefSpeechTable represents the 'epic.speech' table
type RefSpeechTable struct {
	Table          string
	ID             string
	ClusterID      string
	WorkID         string
	Type           string
	Seq            string
	Part           string
	FirstLine      string
	LastLine       string
	Level          string
	PartialA       string
	PartialB       string
	SpeakerNotes   string
	AddresseeNotes string
	Notes          string
	CreatedAt      string
}

// RefSpeech is the schema definition for epic.speech
var RefSpeech = RefSpeechTable{
	Table:          "epic.speech",
	ID:             "id",
	ClusterID:      "clusterid",
	WorkID:         "workid",
	Type:           "type",
	Seq:            "seq",
	Part:           "part",
	FirstLine:      "firstline",
	LastLine:       "lastline",
	Level:          "level",
	PartialA:       "partiala",
	PartialB:       "partialb",
	SpeakerNotes:   "speakernotes",
	AddresseeNotes: "addresseenotes",
	Notes:          "notes",
	CreatedAt:      "createdat",
}

func (t RefSpeechTable) Columns() []string {
	return []string{
		t.ID, t.ClusterID, t.WorkID, t.Type, t.Seq, t.Part,
		t.FirstLine, t.LastLine, t.Level, t.PartialA, t.PartialB,
		t.SpeakerNotes, t.AddresseeNotes, t.Notes, t.CreatedAt,
	}
}
