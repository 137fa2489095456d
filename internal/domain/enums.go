package domain

// Phase identifies which half of the week an interview covers.
type Phase string

const (
	PhaseUnknown   Phase = "unknown"
	PhaseBeginning Phase = "beginning_of_week"
	PhaseEnd       Phase = "end_of_week"
)

// FieldName identifies one of the structured pieces of a status update.
type FieldName string

const (
	FieldEmail           FieldName = "email"
	FieldProject         FieldName = "project"
	FieldAccomplishments FieldName = "accomplishments"
	FieldBlockers        FieldName = "blockers"
	FieldRisks           FieldName = "risks"
	FieldPersonalUpdates FieldName = "personal_updates"
)

// RequiredFields is the canonical ordered set of fields an interview must
// collect before it can complete. Phase is tracked separately and is not
// part of this set.
var RequiredFields = []FieldName{
	FieldEmail,
	FieldProject,
	FieldAccomplishments,
	FieldBlockers,
	FieldRisks,
	FieldPersonalUpdates,
}

// requiredFieldSet is the membership index for RequiredFields.
var requiredFieldSet = map[FieldName]bool{
	FieldEmail: true, FieldProject: true, FieldAccomplishments: true,
	FieldBlockers: true, FieldRisks: true, FieldPersonalUpdates: true,
}

// IsRequiredField returns true if the given name is one of the six
// required update fields.
func IsRequiredField(name FieldName) bool {
	return requiredFieldSet[name]
}

// Speaker identifies who produced a transcript message.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerAgent Speaker = "agent"
)

// SessionState is the dialogue state machine state.
type SessionState string

const (
	StateCollecting SessionState = "collecting"
	StateDone       SessionState = "done"
)
