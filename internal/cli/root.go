package cli

import (
	"github.com/calebmoran/checkin/internal/interview"
	"github.com/calebmoran/checkin/internal/llm"
	"github.com/calebmoran/checkin/internal/repository"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Interview *interview.Controller
	Updates   repository.UpdateRepo
	LLM       llm.Client
	Endpoint  string
}

// NewRootCmd creates the top-level "checkin" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "checkin",
		Short: "Conversational weekly status updates",
		Long: `checkin interviews you about your week and turns the conversation
into a structured status update for your manager.`,
	}

	root.AddCommand(
		newChatCmd(app),
		newHistoryCmd(app),
	)

	return root
}
