package formatter

import (
	"fmt"
	"strings"

	"github.com/calebmoran/checkin/internal/domain"
)

// FormatAgentMessage renders one agent chat message.
func FormatAgentMessage(text string) string {
	return StylePurple.Render("checkin") + Dim(": ") + StyleFg.Render(text)
}

// FormatUserEcho renders the user's own message back into the chat log.
func FormatUserEcho(text string) string {
	return Dim("You: ") + text
}

// FormatOfflineWarning renders the banner shown when the model server is
// unreachable at chat start.
func FormatOfflineWarning(endpoint string) string {
	return StyleYellow.Render("warning: ") +
		fmt.Sprintf("cannot reach the model server at %s; replies will fail until it is back", endpoint)
}

// FormatUpdateList renders stored updates, newest first.
func FormatUpdateList(updates []*domain.Update) string {
	if len(updates) == 0 {
		return Dim("No saved updates.")
	}

	var b strings.Builder
	for i, u := range updates {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatUpdate(u))
	}
	return b.String()
}

// FormatUpdate renders a single stored update with its metadata header.
func FormatUpdate(u *domain.Update) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("week %s", u.Week)))
	b.WriteString("\n")
	b.WriteString(Dim(u.UserEmail))
	b.WriteString(Dim(" · "))
	b.WriteString(PhaseLabel(u.Phase))
	b.WriteString(Dim(" · "))
	b.WriteString(Dim(u.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(u.Summary)
	b.WriteString("\n")
	return b.String()
}
