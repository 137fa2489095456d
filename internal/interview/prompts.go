package interview

import (
	"strings"

	"github.com/calebmoran/checkin/internal/domain"
)

// StartMessage opens every interview. It asks for the week phase and the
// user's email in one combined message.
const StartMessage = `Hello! I'm here to help you craft an update for your manager.
To get started, could you please tell me if this is for the beginning of the week or the end of the week? Please also provide your email address.`

// ApologyMessage is returned to the user when an oracle call fails.
// Session state is left untouched so the next message simply retries.
const ApologyMessage = "I'm sorry, but I encountered an unexpected error. Could you please try again?"

// completionPrefix and completionSuffix wrap the rendered summary in the
// final reply of a finished interview.
const (
	completionPrefix = "Great! We've completed your update. Here's a summary of what we've discussed:\n\n"
	completionSuffix = "\n\nWe'll go ahead and save this update for your manager."
)

// classifySystemPrompt instructs the LLM to sort one user message into the
// fixed category taxonomy and reply in a three-line key:value shape.
const classifySystemPrompt = `You classify messages from a software engineer who is giving a weekly status update.
Analyze the user's message and determine which category it best fits into:
- week_time: If the message indicates whether it's the beginning or end of the week
- email: If the message appears to contain the user's email address
- project: Information about the current project
- accomplishments: Recent achievements or milestones related to the specific project
- blockers: Issues or challenges faced in completing specific tasks for the project
- risks: Potential risks to the project's completion or timely delivery
- personal_updates: Personal news unrelated to the project
- unclear: If the message doesn't clearly fit into any category

If an email address appears anywhere in the message, extract it, even when the category is something else.
If the category is "week_time", also extract whether it's the beginning or end of the week.

Respond in exactly this format, with no other text:
Category: [category]
Email: [extracted email address, otherwise "None"]
Week Time: [beginning/end if category is "week_time", otherwise "None"]`

// plannerSystemPrompt sets the interviewer persona for question phrasing.
const plannerSystemPrompt = `You are an enthusiastic and helpful teammate. Your job is to help the user craft an update for their manager on the project they are working on.

Engage with the user in a friendly, conversational manner. Always respond to the user's last message, acknowledging what they've said, and then transition naturally but explicitly to the next question.

Focus on gathering one piece of missing information at a time. Don't overwhelm the user by asking for everything at once. Your responses should be concise and focused on gathering the required information.

If all required information has already been gathered, provide a short concluding acknowledgment instead of a question.`

// Phase-specific checklists steering the interviewer.
const (
	phaseUnknownChecklist = `The week phase is not yet known. Before anything else:
1. Ask whether this update is for the beginning of the week or the end of the week
2. Make sure to collect the user's email`

	beginningChecklist = `For the beginning of the week, focus on:
1. What project(s) the user is currently working on and what specific tasks are related to the project(s)
2. What the user would like to get done by the end of the week
3. Any potential blockers or unknowns that may come up this week
4. Anything really cool that happened in the last week that the user would like to share or celebrate
5. Make sure to collect the user's email`

	endChecklist = `For the end of the week, focus on:
1. Any personal updates the user would like to share
2. What the user accomplished: the project and the tasks they completed
3. Any blockers, issues, or unknowns the user experienced this week
4. Any risks or concerns about the project or its goals
5. Make sure to collect the user's email`
)

// summarySystemPrompt asks for the structured-bullet report.
const summarySystemPrompt = `Based on the conversation you are given, generate a concise summary of the team member's weekly update. Format the summary as a set of bullets, using exactly the section layout you are given. Base every bullet on what the user actually said.`

const beginningSummaryLayout = `Beginning of Week:
    Current Tasks:
        Project: The project that the user worked on
        Tasks for the week: The specific tasks that the user will be working on
    Goals for the Week:
        The goals for the week that the user has
    Blockers:
        Any blockers, issues, or unknowns that the user might experience
    Personal Update:
        Any personal updates from the user`

const endSummaryLayout = `End of Week:
    Personal Update:
        Any personal updates from the user
    Accomplishments:
        Project: The project that the user worked on
        The tasks that the user completed
    Blockers:
        Any blockers, issues, or unknowns that the user experienced this week
    Risks:
        Any risks or concerns expressed by the user about the project and its goals`

// checklistFor returns the interviewer checklist for the session's phase.
func checklistFor(phase domain.Phase) string {
	switch phase {
	case domain.PhaseBeginning:
		return beginningChecklist
	case domain.PhaseEnd:
		return endChecklist
	default:
		return phaseUnknownChecklist
	}
}

// summaryLayoutFor returns the report layout for the given phase.
func summaryLayoutFor(phase domain.Phase) string {
	if phase == domain.PhaseEnd {
		return endSummaryLayout
	}
	return beginningSummaryLayout
}

// renderTranscript flattens a transcript into "Speaker: text" lines for
// inclusion in oracle prompts.
func renderTranscript(transcript []domain.Message) string {
	var b strings.Builder
	for _, m := range transcript {
		switch m.Speaker {
		case domain.SpeakerUser:
			b.WriteString("User: ")
		case domain.SpeakerAgent:
			b.WriteString("Agent: ")
		}
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func buildClassifyUserPrompt(utterance string, transcript []domain.Message) string {
	var b strings.Builder
	if len(transcript) > 0 {
		b.WriteString("Conversation so far:\n")
		b.WriteString(renderTranscript(transcript))
		b.WriteString("\n")
	}
	b.WriteString("User message: ")
	b.WriteString(utterance)
	return b.String()
}

func buildQuestionUserPrompt(s *domain.Session) string {
	var b strings.Builder

	b.WriteString("Chat history:\n")
	b.WriteString(renderTranscript(s.Transcript()))

	b.WriteString("\nLast user message: ")
	b.WriteString(s.LastUtterance)
	b.WriteString("\n")

	b.WriteString("\nUpdate state:\n")
	for _, f := range domain.RequiredFields {
		b.WriteString("- ")
		b.WriteString(string(f))
		if s.Tracker.IsKnown(f) {
			b.WriteString(": collected\n")
		} else {
			b.WriteString(": missing\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(checklistFor(s.Phase))
	b.WriteString("\n")

	missing := s.Tracker.MissingFields()
	if s.Phase == domain.PhaseUnknown || len(missing) > 0 {
		b.WriteString("\nMissing information, in order: ")
		if s.Phase == domain.PhaseUnknown {
			b.WriteString("week_time")
			if len(missing) > 0 {
				b.WriteString(", ")
			}
		}
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n\nAcknowledge the user's last message, then ask specifically about the first missing item. One question only.")
	} else {
		b.WriteString("\nAll required information has been gathered. Provide a brief concluding acknowledgment, not a question.")
	}

	return b.String()
}

func buildSummaryUserPrompt(transcript []domain.Message, phase domain.Phase) string {
	var b strings.Builder
	b.WriteString("Use the following format:\n\n")
	b.WriteString(summaryLayoutFor(phase))
	b.WriteString("\n\nConversation:\n")
	b.WriteString(renderTranscript(transcript))
	b.WriteString("\nSummary:")
	return b.String()
}
