package interview

import (
	"context"
	"fmt"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/llm"
)

// Planner phrases the next interviewer message for a session. It holds no
// session state and is safe for concurrent use across sessions.
type Planner struct {
	client llm.Client
}

// NewPlanner creates a Planner backed by an LLM client.
func NewPlanner(client llm.Client) *Planner {
	return &Planner{client: client}
}

// NextPrompt produces the agent's next message: an acknowledgment of the
// user's last message followed by a question about the first missing
// field, one field at a time. While the week phase is unknown the prompt
// steers toward resolving phase and email before anything else. With
// nothing missing it yields a concluding acknowledgment instead of a
// question.
func (p *Planner) NextPrompt(ctx context.Context, s *domain.Session) (string, error) {
	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuestion,
		SystemPrompt: plannerSystemPrompt,
		UserPrompt:   buildQuestionUserPrompt(s),
	})
	if err != nil {
		return "", fmt.Errorf("llm question generation failed: %w", err)
	}
	return resp.Text, nil
}
