package cli

import (
	"fmt"

	"github.com/calebmoran/checkin/internal/cli/formatter"
	"github.com/calebmoran/checkin/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var email string
	var weeks int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved weekly updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var updates []*domain.Update
			var err error
			if email != "" {
				updates, err = app.Updates.ListByEmail(ctx, email)
			} else {
				updates, err = app.Updates.ListRecent(ctx, weeks)
			}
			if err != nil {
				return fmt.Errorf("listing updates: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUpdateList(updates))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "only show updates for this email address")
	cmd.Flags().IntVar(&weeks, "weeks", 4, "how many weeks back to list")

	cmd.AddCommand(newHistoryClearCmd(app))
	return cmd
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Delete all saved updates?").
							Affirmative("Yes").
							Negative("No").
							Value(&confirmed),
					),
				).WithTheme(checkinHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Updates.DeleteAll(cmd.Context()); err != nil {
				return fmt.Errorf("clearing updates: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All updates deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// checkinHuhTheme adapts huh's base theme to the Gruvbox palette used by
// the formatter package.
func checkinHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
