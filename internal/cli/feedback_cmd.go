package cli

import (
	"context"
	"fmt"

	"github.com/avezina/pathwise/internal/cli/formatter"
	"github.com/avezina/pathwise/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Rate learning paths",
	}

	cmd.AddCommand(
		newFeedbackRateCmd(app, "up", "Rate a path as helpful", domain.RatingHelpful),
		newFeedbackRateCmd(app, "down", "Rate a path as not helpful", domain.RatingNotHelpful),
		newFeedbackSummaryCmd(app),
	)

	return cmd
}

func newFeedbackRateCmd(app *App, use, short string, rating domain.Rating) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <path-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(cmd.Flags())
			if err != nil {
				return err
			}
			id, err := resolvePathID(args[0])
			if err != nil {
				return err
			}

			if err := app.Paths.RecordFeedback(context.Background(), user, id, rating); err != nil {
				return err
			}
			fmt.Printf("Recorded %s for path #%d.\n", formatter.RatingIndicator(rating), id)
			return nil
		},
	}
}

func newFeedbackSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show feedback across all paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Paths.FeedbackSummary(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderFeedbackSummary(entries))
			return nil
		},
	}
}
