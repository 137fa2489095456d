package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/llm"
	"github.com/calebmoran/checkin/internal/repository"
	"github.com/calebmoran/checkin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptedOllamaServer serves canned /api/generate responses in order.
// It validates that no mock-drift exists between the Ollama HTTP response
// format and the interview layer's parsing.
func newScriptedOllamaServer(t *testing.T, responses []string) *httptest.Server {
	t.Helper()
	i := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Less(t, i, len(responses), "more oracle calls than scripted responses")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model":    "test-model",
			"response": responses[i],
		})
		i++
	}))
}

// TestInterview_FullSession_WithHTTPTestServer drives a complete
// beginning-of-week interview through the real HTTP client: six user
// turns, one question per missing field, then summary and persistence.
func TestInterview_FullSession_WithHTTPTestServer(t *testing.T) {
	summary := "Beginning of Week:\n    Current Tasks:\n        Project: ingest pipeline\n" +
		"    Goals for the Week:\n        land the schema migration\n" +
		"    Blockers:\n        waiting on infra review\n" +
		"    Personal Update:\n        back from vacation"

	srv := newScriptedOllamaServer(t, []string{
		// turn 1: phase + email arrive together
		"Category: week_time\nEmail: a@b.com\nWeek Time: beginning",
		"Thanks! What project are you working on?",
		// turn 2: project
		"Category: project\nEmail: None\nWeek Time: None",
		"What do you want to get done this week?",
		// turn 3: goals read as accomplishments-to-be
		"Category: accomplishments\nEmail: None\nWeek Time: None",
		"Any blockers or unknowns?",
		// turn 4: blockers
		"Category: blockers\nEmail: None\nWeek Time: None",
		"Any risks to the project's goals?",
		// turn 5: risks
		"Category: risks\nEmail: None\nWeek Time: None",
		"Anything fun outside of work?",
		// turn 6: personal update completes the interview
		"Category: personal_updates\nEmail: None\nWeek Time: None",
		summary,
	})
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})

	repo := repository.NewSQLiteUpdateRepo(testutil.NewTestDB(t))
	ctrl := NewController(NewClassifier(client), NewPlanner(client), NewSummarizer(client), repo)
	ctrl.SetErrorLog(&bytes.Buffer{})
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	ctrl.SetClock(func() time.Time { return now })

	s := domain.NewSession()
	ctrl.Start(s)

	utterances := []string{
		"It's the beginning of the week, my email is a@b.com",
		"I'm working on the ingest pipeline",
		"This week I want to land the schema migration",
		"Blocked waiting on infra review",
		"If the review slips the launch date is at risk",
		"Personally, I'm just back from vacation",
	}

	ctx := context.Background()
	for i, u := range utterances[:len(utterances)-1] {
		res, err := ctrl.HandleTurn(ctx, s, u)
		require.NoError(t, err, "turn %d", i+1)
		assert.False(t, res.Done, "turn %d finished early", i+1)
	}

	res, err := ctrl.HandleTurn(ctx, s, utterances[len(utterances)-1])
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, summary, res.Summary)
	assert.Equal(t, domain.StateDone, s.State)
	assert.Equal(t, domain.PhaseBeginning, s.Phase)

	stored, err := repo.ListByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "2026-35", stored[0].Week)
	assert.Equal(t, domain.PhaseBeginning, stored[0].Phase)
	assert.Equal(t, summary, stored[0].Summary)
}

// TestInterview_OracleTimeout_WithHTTPTestServer exercises the apology
// path end to end: a slow server times the classification out and the
// session stays exactly where it was.
func TestInterview_OracleTimeout_WithHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	cfg.Tasks = map[llm.TaskType]llm.TaskConfig{
		llm.TaskClassify: {Temperature: 0, MaxTokens: 128, TimeoutMs: 50},
	}
	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})

	ctrl := NewController(NewClassifier(client), NewPlanner(client), NewSummarizer(client), nil)

	s := domain.NewSession()
	ctrl.Start(s)
	before := s.TranscriptLen()

	res, err := ctrl.HandleTurn(context.Background(), s, "it's monday")
	require.NoError(t, err)

	assert.Equal(t, ApologyMessage, res.Reply)
	assert.Equal(t, before, s.TranscriptLen())
	assert.Equal(t, domain.RequiredFields, s.Tracker.MissingFields())
}
