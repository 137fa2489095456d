package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, PhaseUnknown, s.Phase)
	assert.Equal(t, StateCollecting, s.State)
	assert.Empty(t, s.Email)
	assert.Zero(t, s.TranscriptLen())
}

func TestSession_TranscriptIsAppendOnlyAndOrdered(t *testing.T) {
	s := NewSession()

	s.AppendAgent("hello")
	s.AppendUser("hi there")
	s.AppendAgent("what project?")

	got := s.Transcript()
	assert.Equal(t, []Message{
		{Speaker: SpeakerAgent, Text: "hello"},
		{Speaker: SpeakerUser, Text: "hi there"},
		{Speaker: SpeakerAgent, Text: "what project?"},
	}, got)

	// Mutating the returned slice must not touch the session's log.
	got[0].Text = "tampered"
	assert.Equal(t, "hello", s.Transcript()[0].Text)
}

func TestSession_SetPhaseIsAssignOnce(t *testing.T) {
	s := NewSession()

	s.SetPhase(PhaseBeginning)
	assert.Equal(t, PhaseBeginning, s.Phase)

	s.SetPhase(PhaseEnd)
	assert.Equal(t, PhaseBeginning, s.Phase)

	s.SetPhase(PhaseUnknown)
	assert.Equal(t, PhaseBeginning, s.Phase)
}

func TestSession_SetEmailNeverOverwrites(t *testing.T) {
	s := NewSession()

	s.SetEmail("")
	assert.Empty(t, s.Email)

	s.SetEmail("a@b.com")
	assert.Equal(t, "a@b.com", s.Email)

	s.SetEmail("other@b.com")
	assert.Equal(t, "a@b.com", s.Email)
}

func TestWeekBucket(t *testing.T) {
	// 2026-01-01 falls in ISO week 1 of 2026.
	assert.Equal(t, "2026-01", WeekBucket(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	assert.Equal(t, "2025-01", WeekBucket(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-35", WeekBucket(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)))
}
