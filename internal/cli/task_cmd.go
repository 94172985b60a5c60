package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Track task completion",
	}

	cmd.AddCommand(
		newTaskSetCmd(app, "done", "Mark a task as completed", true),
		newTaskSetCmd(app, "undo", "Mark a task as not completed", false),
	)

	return cmd
}

func newTaskSetCmd(app *App, use, short string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <path-id> <day> <title>",
		Short: short,
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := resolvePathID(args[0])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[1])
			if err != nil || day <= 0 {
				return fmt.Errorf("invalid day number %q", args[1])
			}
			title := strings.Join(args[2:], " ")

			if err := app.Paths.SetTaskDone(context.Background(), user, id, day, title, done); err != nil {
				return err
			}

			if done {
				fmt.Printf("Marked %q on day %d as done.\n", title, day)
			} else {
				fmt.Printf("Marked %q on day %d as not done.\n", title, day)
			}
			return nil
		},
	}
}
