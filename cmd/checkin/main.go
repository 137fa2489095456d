package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calebmoran/checkin/internal/cli"
	"github.com/calebmoran/checkin/internal/db"
	"github.com/calebmoran/checkin/internal/interview"
	"github.com/calebmoran/checkin/internal/llm"
	"github.com/calebmoran/checkin/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.checkin/checkin.db
	dbPath := os.Getenv("CHECKIN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".checkin", "checkin.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	updateRepo := repository.NewSQLiteUpdateRepo(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, observer)

	controller := interview.NewController(
		interview.NewClassifier(llmClient),
		interview.NewPlanner(llmClient),
		interview.NewSummarizer(llmClient),
		updateRepo,
	)

	app := &cli.App{
		Interview: controller,
		Updates:   updateRepo,
		LLM:       llmClient,
		Endpoint:  llmCfg.Endpoint,
	}

	return cli.NewRootCmd(app).Execute()
}
