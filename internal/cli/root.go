// Package cli implements the chatmeta command line.
package cli

import (
	"path/filepath"

	"github.com/erg0nix/chatmeta/internal/config"
	"github.com/erg0nix/chatmeta/internal/history"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chatmeta",
		Short:         "Inspect and update per-conversation chat metadata",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	rootCmd.PersistentFlags().String("history-dir", "", "override the history directory")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newMarkCmd())
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newReferenceCmd())
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}

func loadConfig(path string) (config.Config, error) {
	configPath := path
	if configPath == "" {
		configPath = filepath.Join(config.Default().DataDir, "config.toml")
	}
	return config.LoadOrCreate(configPath)
}

func scopeArg(args []string) (history.Kind, error) {
	return history.ParseKind(args[0])
}
