package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/llm"
)

// Category is the classifier's verdict for one user message.
type Category string

const (
	CategoryWeekTime        Category = "week_time"
	CategoryEmail           Category = "email"
	CategoryProject         Category = "project"
	CategoryAccomplishments Category = "accomplishments"
	CategoryBlockers        Category = "blockers"
	CategoryRisks           Category = "risks"
	CategoryPersonalUpdates Category = "personal_updates"
	CategoryUnclear         Category = "unclear"
)

var validCategories = map[Category]bool{
	CategoryWeekTime: true, CategoryEmail: true, CategoryProject: true,
	CategoryAccomplishments: true, CategoryBlockers: true,
	CategoryRisks: true, CategoryPersonalUpdates: true, CategoryUnclear: true,
}

// Classification is the structured result of classifying one utterance.
// Email is populated whenever an address was detected, independent of
// Category. WeekTime is populated only for the week_time category.
type Classification struct {
	Category Category
	Email    string
	WeekTime string
}

// Field returns the tracker field this classification satisfies, or
// ("", false) when the category is not a required field.
func (c *Classification) Field() (domain.FieldName, bool) {
	f := domain.FieldName(c.Category)
	return f, domain.IsRequiredField(f)
}

// Classifier sorts user utterances into the update category taxonomy
// using the generation oracle. It holds no session state and is safe for
// concurrent use across sessions.
type Classifier struct {
	client llm.Client
}

// NewClassifier creates a Classifier backed by an LLM client.
func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// classifyLabels are the reply lines the oracle is instructed to emit.
var classifyLabels = []string{"Category", "Email", "Week Time"}

// Classify determines the category of one utterance, given the transcript
// so far as context. Oracle transport failures are returned as errors;
// a reply in an unexpected shape degrades to unclear instead.
func (c *Classifier) Classify(ctx context.Context, utterance string, transcript []domain.Message) (*Classification, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: classifySystemPrompt,
		UserPrompt:   buildClassifyUserPrompt(utterance, transcript),
	})
	if err != nil {
		return nil, fmt.Errorf("llm classification failed: %w", err)
	}

	return parseClassification(resp.Text), nil
}

// parseClassification turns the oracle's three-line reply into a
// Classification. The oracle output is untrusted: any missing line,
// unknown category name, or junk value maps to unclear/empty rather
// than an error.
func parseClassification(raw string) *Classification {
	lines := llm.ExtractLabeledLines(raw, classifyLabels)

	cat := Category(strings.ToLower(strings.TrimSpace(lines["category"])))
	if !validCategories[cat] {
		cat = CategoryUnclear
	}

	cls := &Classification{Category: cat}

	if email := cleanOracleValue(lines["email"]); strings.Contains(email, "@") {
		cls.Email = email
	}

	if cat == CategoryWeekTime {
		cls.WeekTime = strings.ToLower(cleanOracleValue(lines["week time"]))
	}

	return cls
}

// cleanOracleValue normalizes an extracted value, treating the model's
// "None"/"null" placeholders as absent.
func cleanOracleValue(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "none", "null", "n/a", "-":
		return ""
	}
	return v
}
