package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/groundwork/internal/cli"
	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/llm"
	"github.com/alexanderramin/groundwork/internal/materials"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/alexanderramin/groundwork/internal/webhook"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; the environment always wins.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.groundwork/groundwork.db
	dbPath := os.Getenv("GROUNDWORK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".groundwork", "groundwork.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	llmCfg := llm.LoadConfig()

	var observer llm.Observer = llm.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "groundwork"})
		observer = llm.NewLogObserver(logger)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	client := llm.NewChatClient(llmCfg, observer)

	uow := db.NewSQLiteUnitOfWork(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	app := &cli.App{
		Generate: service.NewGenerateService(client, materials.NewService(client), useCaseObserver),
		History:  service.NewHistoryService(scheduleRepo, uow),
		LLM:      client,
	}

	// Interactive features (parameter form, spinner) need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	hookCfg := webhook.LoadConfig()
	if hookCfg.URL != "" {
		hook, err := webhook.NewClient(hookCfg)
		if err != nil {
			return fmt.Errorf("configuring webhook: %w", err)
		}
		app.Webhook = hook
	}

	return cli.NewRootCmd(app).Execute()
}
