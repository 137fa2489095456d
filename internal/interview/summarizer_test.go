package interview

import (
	"context"
	"testing"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/llm"
	"github.com/calebmoran/checkin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryTranscript() []domain.Message {
	return []domain.Message{
		{Speaker: domain.SpeakerAgent, Text: "What project?"},
		{Speaker: domain.SpeakerUser, Text: "the ingest pipeline"},
	}
}

func TestSummarizer_BeginningLayout(t *testing.T) {
	client := testutil.Script("  Beginning of Week summary here  ")
	s := NewSummarizer(client)

	got, err := s.Summarize(context.Background(), summaryTranscript(), domain.PhaseBeginning)
	require.NoError(t, err)
	assert.Equal(t, "Beginning of Week summary here", got)

	req := client.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, llm.TaskSummarize, req.Task)
	assert.Contains(t, req.UserPrompt, "Current Tasks")
	assert.Contains(t, req.UserPrompt, "Goals for the Week")
	assert.Contains(t, req.UserPrompt, "User: the ingest pipeline")
	assert.NotContains(t, req.UserPrompt, "Accomplishments")
}

func TestSummarizer_EndLayout(t *testing.T) {
	client := testutil.Script("End of Week summary")
	s := NewSummarizer(client)

	_, err := s.Summarize(context.Background(), summaryTranscript(), domain.PhaseEnd)
	require.NoError(t, err)

	req := client.LastRequest()
	require.NotNil(t, req)
	assert.Contains(t, req.UserPrompt, "Accomplishments")
	assert.Contains(t, req.UserPrompt, "Risks")
	assert.NotContains(t, req.UserPrompt, "Goals for the Week")
}

func TestSummarizer_TransportErrorPropagates(t *testing.T) {
	client := (&testutil.ScriptedClient{}).Fail(llm.ErrTimeout)
	s := NewSummarizer(client)

	_, err := s.Summarize(context.Background(), summaryTranscript(), domain.PhaseEnd)
	assert.ErrorIs(t, err, llm.ErrTimeout)
}
