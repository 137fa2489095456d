package testutil

import (
	"context"

	"github.com/calebmoran/checkin/internal/llm"
)

// ScriptedClient is an llm.Client that replays canned responses in order.
// It records every request it receives so tests can assert on prompts.
type ScriptedClient struct {
	Responses []ScriptedResponse
	Requests  []llm.GenerateRequest

	next int
}

// ScriptedResponse is one canned oracle reply, or an injected failure.
type ScriptedResponse struct {
	Text string
	Err  error
}

// Script builds a ScriptedClient from a sequence of reply texts.
func Script(texts ...string) *ScriptedClient {
	c := &ScriptedClient{}
	for _, t := range texts {
		c.Responses = append(c.Responses, ScriptedResponse{Text: t})
	}
	return c
}

// Fail appends an injected failure to the script.
func (c *ScriptedClient) Fail(err error) *ScriptedClient {
	c.Responses = append(c.Responses, ScriptedResponse{Err: err})
	return c
}

// Then appends another canned reply to the script.
func (c *ScriptedClient) Then(text string) *ScriptedClient {
	c.Responses = append(c.Responses, ScriptedResponse{Text: text})
	return c
}

func (c *ScriptedClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.Requests = append(c.Requests, req)

	// Replaying past the end keeps returning the last entry, which lets
	// "unclear forever" style tests run any number of turns.
	i := c.next
	if i >= len(c.Responses) {
		i = len(c.Responses) - 1
	} else {
		c.next++
	}
	if i < 0 {
		return &llm.GenerateResponse{Text: "", Model: "scripted"}, nil
	}

	r := c.Responses[i]
	if r.Err != nil {
		return nil, r.Err
	}
	return &llm.GenerateResponse{Text: r.Text, Model: "scripted"}, nil
}

func (c *ScriptedClient) Available(context.Context) bool { return true }

// LastRequest returns the most recent request, or nil if none were made.
func (c *ScriptedClient) LastRequest() *llm.GenerateRequest {
	if len(c.Requests) == 0 {
		return nil
	}
	return &c.Requests[len(c.Requests)-1]
}
