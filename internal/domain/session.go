package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry of an interview transcript.
type Message struct {
	Speaker Speaker
	Text    string
}

// Session is one interview instance. It is owned by the calling layer and
// mutated turn-by-turn by the dialogue controller; it is never shared
// between concurrent turns.
type Session struct {
	ID            string
	Phase         Phase
	Tracker       *FieldTracker
	Email         string
	State         SessionState
	LastUtterance string
	StartedAt     time.Time

	transcript []Message
}

// NewSession creates a fresh interview session in the collecting state.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Phase:     PhaseUnknown,
		Tracker:   NewFieldTracker(),
		State:     StateCollecting,
		StartedAt: time.Now(),
	}
}

// AppendUser appends a user utterance to the transcript.
func (s *Session) AppendUser(text string) {
	s.transcript = append(s.transcript, Message{Speaker: SpeakerUser, Text: text})
}

// AppendAgent appends an agent reply to the transcript.
func (s *Session) AppendAgent(text string) {
	s.transcript = append(s.transcript, Message{Speaker: SpeakerAgent, Text: text})
}

// Transcript returns a copy of the transcript in chronological order.
// The log is append-only; entries are never removed or rewritten.
func (s *Session) Transcript() []Message {
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// TranscriptLen returns the number of transcript entries.
func (s *Session) TranscriptLen() int {
	return len(s.transcript)
}

// SetPhase records the week phase. The first non-unknown value wins;
// later contradicting classifications do not flip it.
func (s *Session) SetPhase(p Phase) {
	if s.Phase != PhaseUnknown || p == PhaseUnknown {
		return
	}
	s.Phase = p
}

// SetEmail records the user's email address once detected. An existing
// non-empty email is never overwritten.
func (s *Session) SetEmail(email string) {
	if s.Email != "" || email == "" {
		return
	}
	s.Email = email
}
