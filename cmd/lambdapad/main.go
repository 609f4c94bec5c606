package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lambdapad/lambdapad/internal/config"
	"github.com/lambdapad/lambdapad/internal/database"
	"github.com/lambdapad/lambdapad/internal/database/repository"
	"github.com/lambdapad/lambdapad/internal/lambda"
	"github.com/lambdapad/lambdapad/internal/logging"
	"github.com/lambdapad/lambdapad/internal/tui"
	"github.com/lambdapad/lambdapad/internal/workspace"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	logger := logging.New(cfg.Logging.Path, cfg.Logging.Level)
	defer func() { _ = logger.Sync() }()

	store := workspace.NewStore(repository.NewKVRepo(db), logger)
	store.Load(ctx)

	ws := workspace.New(store, lambda.NewEngine(), logger)
	ws.Current = cfg.UI.StartExpression

	logger.Info("session start",
		zap.Int("library_entries", store.Library().Len()),
		zap.String("db", cfg.Database.Path))

	p := tea.NewProgram(tui.New(ctx, cfg, ws, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
