package cli

import (
	"fmt"
	"os"

	"github.com/avezina/pathwise/internal/account"
	"github.com/avezina/pathwise/internal/llm"
	"github.com/avezina/pathwise/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to the services used by CLI commands.
type App struct {
	Paths    service.PathService
	Accounts *account.Manager
	Reset    func() *account.ResetFlow
	Model    llm.Client

	// IsInteractive reports whether stdin is a terminal; wizards are
	// only offered interactively.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pathwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathwise",
		Short: "Day-by-day learning path planner",
	}

	root.PersistentFlags().String("user", "", "Acting username (defaults to $PATHWISE_USER)")

	root.AddCommand(
		newAccountCmd(app),
		newPathCmd(app),
		newTaskCmd(app),
		newFeedbackCmd(app),
	)

	return root
}

// currentUser resolves the acting username from the --user flag or the
// PATHWISE_USER environment variable.
func currentUser(flags *pflag.FlagSet) (string, error) {
	user, err := flags.GetString("user")
	if err != nil {
		return "", err
	}
	if user == "" {
		user = os.Getenv("PATHWISE_USER")
	}
	if user == "" {
		return "", fmt.Errorf("no user: pass --user or set PATHWISE_USER")
	}
	return user, nil
}
