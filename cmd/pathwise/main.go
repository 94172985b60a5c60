package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avezina/pathwise/internal/account"
	"github.com/avezina/pathwise/internal/cli"
	"github.com/avezina/pathwise/internal/db"
	"github.com/avezina/pathwise/internal/llm"
	"github.com/avezina/pathwise/internal/repository"
	"github.com/avezina/pathwise/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pathwise/pathwise.db
	dbPath := os.Getenv("PATHWISE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pathwise", "pathwise.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	userRepo := repository.NewSQLiteUserRepo(database)
	pathRepo := repository.NewSQLitePathRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	var svcObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
		svcObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	model := llm.NewOllamaClient(llmCfg, observer)

	app := &cli.App{
		Paths:    service.NewPathService(pathRepo, progressRepo, feedbackRepo, model, uow, svcObserver),
		Accounts: account.NewManager(userRepo),
		Reset:    func() *account.ResetFlow { return account.NewResetFlow(userRepo) },
		Model:    model,
	}

	// Wizards are only offered on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
