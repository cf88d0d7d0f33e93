package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/erg0nix/chatmeta/internal/config"
	"github.com/erg0nix/chatmeta/internal/history"
	"github.com/erg0nix/chatmeta/internal/history/metadata"
	"github.com/spf13/cobra"
)

type App struct {
	Config     config.Config
	ConfigPath string
	Store      *metadata.Store
}

func newApp(cmd *cobra.Command) (*App, error) {
	configPath, _ := cmd.Flags().GetString("config")
	historyOverride, _ := cmd.Flags().GetString("history-dir")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if historyOverride != "" {
		cfg.HistoryDir = historyOverride
	}

	cfg.Log = config.LoadLogConfigFromEnv(cfg.Log)
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store := metadata.NewStore(history.Dir(cfg.HistoryDir))
	store.Logger = logger

	return &App{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      store,
	}, nil
}
