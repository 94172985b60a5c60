package cli

import (
	"context"
	"fmt"

	"github.com/avezina/pathwise/internal/cli/formatter"
	"github.com/avezina/pathwise/internal/domain"
	"github.com/avezina/pathwise/internal/generation"
	"github.com/avezina/pathwise/internal/service"
	"github.com/spf13/cobra"
)

func newPathCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Create and browse learning paths",
	}

	cmd.AddCommand(
		newPathNewCmd(app),
		newPathListCmd(app),
		newPathShowCmd(app),
		newPathContinueCmd(app),
	)

	return cmd
}

func newPathNewCmd(app *App) *cobra.Command {
	var topic, skill, duration string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new day-by-day learning path",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(cmd.Flags())
			if err != nil {
				return err
			}

			if topic == "" && app.IsInteractive() {
				if err := wizardNewPath(&topic, &skill, &duration).Run(); err != nil {
					return err
				}
			}
			if skill == "" {
				skill = string(domain.SkillBeginner)
			}

			if !app.Model.Available(ctx) {
				fmt.Println(formatter.StyleYellow.Render("Model server is not responding; generation may fail."))
			}

			fmt.Println(formatter.StyleDim.Render("Generating your plan, this can take a minute..."))
			p, err := app.Paths.Create(ctx, user, topic, domain.SkillLevel(skill), duration)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderPath(p, nil))
			if !p.Parsed {
				fmt.Println(formatter.StyleYellow.Render(
					fmt.Sprintf("Saved as path #%d with raw output only.", p.ID)))
				return nil
			}
			fmt.Printf("Saved as path #%d.\n", p.ID)
			if service.NeedsContinuation(p) {
				fmt.Println(formatter.RenderContinueHint(p, generation.ParseDays(p.DurationText)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "What to learn")
	cmd.Flags().StringVar(&skill, "skill", "", "Skill level: beginner, intermediate, advanced")
	cmd.Flags().StringVar(&duration, "duration", "", "Time frame, e.g. \"2 weeks\"")

	return cmd
}

func newPathListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your learning paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(cmd.Flags())
			if err != nil {
				return err
			}

			paths, err := app.Paths.List(context.Background(), user)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderPathList(paths))
			return nil
		},
	}
}

func newPathShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a path with its task completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := resolvePathID(args[0])
			if err != nil {
				return err
			}

			p, err := app.Paths.Get(ctx, user, id)
			if err != nil {
				return err
			}

			states, err := app.Paths.TaskStates(ctx, user, id)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderPath(p, states))

			completed, total, err := app.Paths.Progress(ctx, user, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderTaskProgress(completed, total, 20))

			if service.NeedsContinuation(p) {
				fmt.Println(formatter.RenderContinueHint(p, generation.ParseDays(p.DurationText)))
			}
			return nil
		},
	}
}

func newPathContinueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "continue <id>",
		Short: "Extend a path toward its requested duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := resolvePathID(args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.StyleDim.Render("Extending your plan..."))
			p, err := app.Paths.Continue(ctx, user, id)
			if err != nil {
				return err
			}

			fmt.Printf("Path #%d now covers %d days.\n", p.ID, p.Plan.LastDay())
			if service.NeedsContinuation(p) {
				fmt.Println(formatter.RenderContinueHint(p, generation.ParseDays(p.DurationText)))
			}
			return nil
		},
	}
}
