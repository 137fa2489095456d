package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/llm"
)

// Summarizer renders a finished transcript into the phase-appropriate
// structured report. Pure function of transcript and phase; safe for
// concurrent use across sessions.
type Summarizer struct {
	client llm.Client
}

// NewSummarizer creates a Summarizer backed by an LLM client.
func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces the structured-bullet report for the transcript,
// using the section layout matching the phase.
func (s *Summarizer) Summarize(ctx context.Context, transcript []domain.Message, phase domain.Phase) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   buildSummaryUserPrompt(transcript, phase),
	})
	if err != nil {
		return "", fmt.Errorf("llm summary generation failed: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
