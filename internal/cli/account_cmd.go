package cli

import (
	"context"
	"fmt"

	"github.com/avezina/pathwise/internal/account"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountSignupCmd(app),
		newAccountLoginCmd(app),
		newAccountResetCmd(app),
	)

	return cmd
}

func newAccountSignupCmd(app *App) *cobra.Command {
	var username, password, question, answer string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" && app.IsInteractive() {
				if err := wizardSignUp(&username, &password, &question, &answer).Run(); err != nil {
					return err
				}
			}

			u, err := app.Accounts.SignUp(context.Background(), username, password, question, answer)
			if err != nil {
				return err
			}

			fmt.Printf("Account %q created.\n", u.Username)
			if !u.HasRecovery() {
				fmt.Println("No recovery question set; a forgotten password cannot be reset.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (min 8 characters)")
	cmd.Flags().StringVar(&question, "question", "", "Recovery question")
	cmd.Flags().StringVar(&answer, "answer", "", "Recovery answer")

	return cmd
}

func newAccountLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and print a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" && app.IsInteractive() {
				if err := wizardPrompt("Password", true, &password).Run(); err != nil {
					return err
				}
			}

			sess, err := app.Accounts.Authenticate(context.Background(), username, password)
			if err != nil {
				return err
			}

			fmt.Printf("Welcome back, %s.\n", sess.Username)
			fmt.Printf("Session %s started at %s.\n", sess.ID, sess.StartedAt.Format("15:04:05"))
			fmt.Printf("Run commands with --user %s or export PATHWISE_USER=%s\n", sess.Username, sess.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

func newAccountResetCmd(app *App) *cobra.Command {
	var username, answer, newPassword string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset a forgotten password via the recovery question",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			flow := app.Reset()
			interactive := app.IsInteractive()

			if username == "" && interactive {
				if err := wizardPrompt("Username", false, &username).Run(); err != nil {
					return err
				}
			}

			question, err := flow.SubmitUsername(ctx, username)
			if err != nil {
				return err
			}

			fmt.Printf("Recovery question: %s\n", question)
			if answer == "" && interactive {
				if err := wizardPrompt("Answer", true, &answer).Run(); err != nil {
					return err
				}
			}
			if err := flow.SubmitAnswer(ctx, answer); err != nil {
				return err
			}

			if newPassword == "" && interactive {
				if err := wizardPrompt("New password", true, &newPassword).Run(); err != nil {
					return err
				}
			}
			if err := flow.SubmitNewPassword(ctx, newPassword); err != nil {
				return err
			}

			if flow.State() != account.Done {
				return fmt.Errorf("reset did not complete (state %s)", flow.State())
			}
			fmt.Println("Password updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&answer, "answer", "", "Recovery answer")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "New password (min 8 characters)")

	return cmd
}
