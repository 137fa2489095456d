package cli

import (
	"context"
	"strings"

	"github.com/calebmoran/checkin/internal/cli/formatter"
	"github.com/calebmoran/checkin/internal/domain"
	"github.com/calebmoran/checkin/internal/interview"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chatView is the interactive interview screen. The user types answers,
// the agent's replies accumulate above the input line, and the view quits
// once the interview completes.
type chatView struct {
	app     *App
	session *domain.Session

	input   textinput.Model
	spin    spinner.Model
	waiting bool
	done    bool

	messages []string
}

// turnResultMsg carries the outcome of one interview turn back into the
// update loop.
type turnResultMsg struct {
	res *interview.TurnResult
	err error
}

func newChatView(app *App) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleYellow

	v := &chatView{
		app:     app,
		session: domain.NewSession(),
		input:   ti,
		spin:    sp,
	}

	v.messages = append(v.messages, formatter.FormatAgentMessage(app.Interview.Start(v.session)))

	return v
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
			return v, tea.Quit
		}

		if msg.Type == tea.KeyEnter && !v.waiting {
			input := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if input == "" {
				return v, nil
			}
			return v.handleInput(input)
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case spinner.TickMsg:
		if !v.waiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case turnResultMsg:
		v.waiting = false
		if msg.err != nil {
			v.messages = append(v.messages, formatter.Dim("error: "+msg.err.Error()))
			return v, nil
		}
		v.messages = append(v.messages, formatter.FormatAgentMessage(msg.res.Reply))
		if msg.res.Done {
			v.done = true
			return v, tea.Quit
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder

	for _, msg := range v.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if v.done {
		return b.String()
	}

	if v.waiting {
		b.WriteString(v.spin.View())
		b.WriteString(formatter.Dim(" thinking..."))
		return b.String()
	}

	b.WriteString(formatter.Dim("> "))
	b.WriteString(v.input.View())

	return b.String()
}

func (v *chatView) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return v, tea.Quit
	}

	v.messages = append(v.messages, formatter.FormatUserEcho(input))
	v.waiting = true

	turn := func() tea.Msg {
		res, err := v.app.Interview.HandleTurn(context.Background(), v.session, input)
		return turnResultMsg{res: res, err: err}
	}

	return v, tea.Batch(v.spin.Tick, turn)
}

func runChatTUI(app *App) error {
	_, err := tea.NewProgram(newChatView(app)).Run()
	return err
}
