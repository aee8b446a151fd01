package schema

// RefSpeechRoleTable represents one of the speech↔instance join tables
// (speaker, addressee, bystander). All three share the same shape.
type RefSpeechRoleTable struct {
	Table      string
	SpeechID   string
	InstanceID string
}

// RefSpeechSpeaker is the schema definition for epic.speech_speaker
var RefSpeechSpeaker = RefSpeechRoleTable{
	Table:      "epic.speech_speaker",
	SpeechID:   "speechid",
	InstanceID: "instanceid",
}

// RefSpeechAddressee is the schema definition for epic.speech_addressee
var RefSpeechAddressee = RefSpeechRoleTable{
	Table:      "epic.speech_addressee",
	SpeechID:   "speechid",
	InstanceID: "instanceid",
}

// RefSpeechBystander is the schema definition for epic.speech_bystander
var RefSpeechBystander = RefSpeechRoleTable{
	Table:      "epic.speech_bystander",
	SpeechID:   "speechid",
	InstanceID: "instanceid",
}

func (t RefSpeechRoleTable) Columns() []string {
	return []string{t.SpeechID, t.InstanceID}
}
