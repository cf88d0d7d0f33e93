// Package config loads the chatmeta TOML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the on-disk configuration. An empty HistoryDir means <DataDir>/history.
type Config struct {
	DataDir    string    `toml:"data_dir"`
	HistoryDir string    `toml:"history_dir"`
	Log        LogConfig `toml:"log"`
}

func Default() Config {
	return Config{
		DataDir: defaultDataDir(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadOrCreate reads the config at path, writing the defaults there first if it does not exist.
func LoadOrCreate(path string) (Config, error) {
	config := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return config, fmt.Errorf("create config dir: %w", err)
			}

			configData, err := toml.Marshal(config)
			if err != nil {
				return config, fmt.Errorf("marshal default config: %w", err)
			}

			if err := os.WriteFile(path, configData, 0o644); err != nil {
				return config, fmt.Errorf("write default config: %w", err)
			}

			config.HistoryDir = filepath.Join(config.DataDir, "history")
			return config, nil
		}

		return config, err
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(configData, &config); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}

	config.DataDir = expandPath(strings.TrimSpace(config.DataDir))
	config.HistoryDir = expandPath(strings.TrimSpace(config.HistoryDir))

	if config.DataDir == "" {
		return config, errors.New("data_dir is required")
	}

	if config.HistoryDir == "" {
		config.HistoryDir = filepath.Join(config.DataDir, "history")
	}

	if _, err := ParseLevel(config.Log.Level); err != nil {
		return config, err
	}

	return config, nil
}

// ParseLevel maps a config level name to a slog level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

func defaultDataDir() string {
	homeDir, _ := os.UserHomeDir()

	if homeDir == "" {
		return ".chatmeta"
	}

	return filepath.Join(homeDir, ".chatmeta")
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}

	if strings.HasPrefix(path, "~") {
		homeDir, _ := os.UserHomeDir()

		if homeDir != "" {
			trimmed := strings.TrimPrefix(path, "~")
			trimmed = strings.TrimPrefix(trimmed, string(os.PathSeparator))

			return filepath.Join(homeDir, trimmed)
		}
	}

	return path
}
