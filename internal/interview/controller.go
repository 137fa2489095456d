package interview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/repository"
	"github.com/google/uuid"
)

// ErrSessionDone is returned when a turn is submitted to a session that
// has already completed. The caller should start a fresh session.
var ErrSessionDone = errors.New("interview already complete")

// TurnResult is the outcome of one interview turn.
type TurnResult struct {
	Reply   string
	Done    bool
	Summary string // set only when Done
}

// Controller drives the interview state machine: one user utterance in,
// one agent reply (or completion) out. The controller itself holds no
// session state; all of it lives on the Session passed into each call.
// A single session must be driven by one turn at a time, but independent
// sessions may run through the same Controller concurrently.
type Controller struct {
	classifier *Classifier
	planner    *Planner
	summarizer *Summarizer
	updates    repository.UpdateRepo

	errLog io.Writer
	now    func() time.Time
}

// NewController wires the dialogue core. updates may be nil, in which
// case completed interviews are not persisted.
func NewController(classifier *Classifier, planner *Planner, summarizer *Summarizer, updates repository.UpdateRepo) *Controller {
	return &Controller{
		classifier: classifier,
		planner:    planner,
		summarizer: summarizer,
		updates:    updates,
		errLog:     os.Stderr,
		now:        time.Now,
	}
}

// SetErrorLog redirects operational error output (persistence failures).
func (c *Controller) SetErrorLog(w io.Writer) { c.errLog = w }

// SetClock overrides the time source. Used by tests.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

// Start opens an interview: the greeting asks for week phase and email
// in one combined message and is recorded in the transcript.
func (c *Controller) Start(s *domain.Session) string {
	s.AppendAgent(StartMessage)
	return StartMessage
}

// HandleTurn processes one user utterance and returns the agent's reply.
//
// Oracle failures are not fatal: the reply is an apology and all session
// state from before the failed call is left untouched, so the user's
// next message retries against last-known-good state.
func (c *Controller) HandleTurn(ctx context.Context, s *domain.Session, utterance string) (*TurnResult, error) {
	if s.State == domain.StateDone {
		return nil, ErrSessionDone
	}

	// Classify before mutating anything: a failed call must leave the
	// transcript and tracker exactly as they were.
	cls, err := c.classifier.Classify(ctx, utterance, s.Transcript())
	if err != nil {
		return &TurnResult{Reply: ApologyMessage}, nil
	}

	s.AppendUser(utterance)
	s.LastUtterance = utterance
	applyClassification(s, cls)

	if s.Tracker.IsComplete() && s.Phase != domain.PhaseUnknown {
		return c.finish(ctx, s)
	}

	question, err := c.planner.NextPrompt(ctx, s)
	if err != nil {
		return &TurnResult{Reply: ApologyMessage}, nil
	}
	s.AppendAgent(question)
	return &TurnResult{Reply: question}, nil
}

// applyClassification folds one classification into the session. Email
// detection is independent of the category: an address spotted in any
// message sets the email and marks the field. The week phase is set at
// most once, from the first week_time classification.
func applyClassification(s *domain.Session, cls *Classification) {
	if field, ok := cls.Field(); ok {
		s.Tracker.MarkKnown(field)
	}

	if cls.Email != "" {
		s.SetEmail(cls.Email)
		s.Tracker.MarkKnown(domain.FieldEmail)
	}

	if cls.Category == CategoryWeekTime && cls.WeekTime != "" {
		if cls.WeekTime == "beginning" {
			s.SetPhase(domain.PhaseBeginning)
		} else {
			s.SetPhase(domain.PhaseEnd)
		}
	}
}

// finish runs the completion path: summarize, reply, persist. The Done
// transition is one-shot; a persistence failure is surfaced on the
// operational log but never rolls the session back or hides the summary.
func (c *Controller) finish(ctx context.Context, s *domain.Session) (*TurnResult, error) {
	summary, err := c.summarizer.Summarize(ctx, s.Transcript(), s.Phase)
	if err != nil {
		return &TurnResult{Reply: ApologyMessage}, nil
	}

	s.State = domain.StateDone
	reply := completionPrefix + summary + completionSuffix
	s.AppendAgent(reply)

	c.persist(ctx, s, summary)

	return &TurnResult{Reply: reply, Done: true, Summary: summary}, nil
}

func (c *Controller) persist(ctx context.Context, s *domain.Session, summary string) {
	if c.updates == nil {
		return
	}
	if s.Email == "" {
		fmt.Fprintf(c.errLog, "checkin: not persisting update for session %s: no email collected\n", s.ID)
		return
	}

	now := c.now()
	u := &domain.Update{
		ID:        uuid.New().String(),
		UserEmail: s.Email,
		Week:      domain.WeekBucket(now),
		Phase:     s.Phase,
		Summary:   summary,
		CreatedAt: now,
	}
	if err := c.updates.Create(ctx, u); err != nil {
		fmt.Fprintf(c.errLog, "checkin: failed to persist update for %s: %v\n", s.Email, err)
	}
}
