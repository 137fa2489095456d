package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/calebmoran/checkin/internal/interview"
	"github.com/calebmoran/checkin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlainChat_GreetsAndAnswers(t *testing.T) {
	client := testutil.Script(
		"Category: unclear\nEmail: null\nWeek Time: null",
		"Thanks for joining! What project are you working on this week?",
	)
	controller := interview.NewController(
		interview.NewClassifier(client),
		interview.NewPlanner(client),
		interview.NewSummarizer(client),
		nil,
	)
	app := &App{Interview: controller}

	in := strings.NewReader("hello there\n")
	var out bytes.Buffer
	require.NoError(t, runPlainChat(context.Background(), app, in, &out))

	assert.Contains(t, out.String(), "help you craft an update")
	assert.Contains(t, out.String(), "What project are you working on this week?")
}

func TestRunPlainChat_QuitCommandStopsWithoutOracleCall(t *testing.T) {
	client := testutil.Script("Category: unclear\nEmail: null\nWeek Time: null")
	controller := interview.NewController(
		interview.NewClassifier(client),
		interview.NewPlanner(client),
		interview.NewSummarizer(client),
		nil,
	)
	app := &App{Interview: controller}

	in := strings.NewReader("/quit\n")
	var out bytes.Buffer
	require.NoError(t, runPlainChat(context.Background(), app, in, &out))

	assert.Empty(t, client.Requests)
}
