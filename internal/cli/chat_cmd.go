package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calebmoran/checkin/internal/cli/formatter"
	"github.com/calebmoran/checkin/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newChatCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start a weekly update interview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.LLM != nil && !app.LLM.Available(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOfflineWarning(app.Endpoint))
			}

			if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
				return runPlainChat(ctx, app, os.Stdin, cmd.OutOrStdout())
			}
			return runChatTUI(app)
		},
	}

	addChatFlags(cmd.Flags(), &plain)
	return cmd
}

func addChatFlags(fs *pflag.FlagSet, plain *bool) {
	fs.BoolVar(plain, "plain", false, "use a plain line-based chat instead of the TUI")
}

// runPlainChat drives the interview over stdin/stdout. Used when stdin is
// not a terminal or when --plain is given.
func runPlainChat(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	session := domain.NewSession()
	fmt.Fprintln(out, formatter.FormatAgentMessage(app.Interview.Start(session)))

	interactive := isatty.IsTerminal(os.Stdout.Fd())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, formatter.Dim("> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		var stop func()
		if interactive {
			stop = formatter.StartSpinner("Thinking...")
		}
		res, err := app.Interview.HandleTurn(ctx, session, line)
		if stop != nil {
			stop()
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, formatter.FormatAgentMessage(res.Reply))
		if res.Done {
			return nil
		}
	}
	return scanner.Err()
}
