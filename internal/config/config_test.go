package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != Default().DataDir {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, Default().DataDir)
	}
	if want := filepath.Join(cfg.DataDir, "history"); cfg.HistoryDir != want {
		t.Errorf("HistoryDir: got %q, want %q", cfg.HistoryDir, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}

	var written Config
	if err := toml.Unmarshal(data, &written); err != nil {
		t.Fatalf("written config does not parse: %v", err)
	}
	if written.Log.Level != "info" {
		t.Errorf("written log level: got %q, want info", written.Log.Level)
	}
}

func TestLoadOrCreate_ReadsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := "data_dir = \"" + filepath.ToSlash(dir) + "\"\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != filepath.ToSlash(dir) {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, dir)
	}
	if want := filepath.Join(filepath.ToSlash(dir), "history"); cfg.HistoryDir != want {
		t.Errorf("HistoryDir: got %q, want %q", cfg.HistoryDir, want)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q, want debug", cfg.Log.Level)
	}
}

func TestLoadOrCreate_EmptyHistoryDirFollowsDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := "data_dir = \"/srv/chat\"\nhistory_dir = \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := filepath.Join("/srv/chat", "history"); cfg.HistoryDir != want {
		t.Errorf("HistoryDir: got %q, want %q", cfg.HistoryDir, want)
	}
}

func TestLoadOrCreate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad toml", "data_dir = [", "parse config"},
		{"empty data dir", "data_dir = \"\"\n", "data_dir is required"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadOrCreate(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("expected %q in error, got %q", tt.errPart, err.Error())
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}

	if got, want := expandPath("~/chat"), filepath.Join(home, "chat"); got != want {
		t.Errorf("expandPath: got %q, want %q", got, want)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath: got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
	}

	for input, want := range tests {
		got, err := ParseLevel(input)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLoadLogConfigFromEnv(t *testing.T) {
	t.Setenv("CHATMETA_LOG_LEVEL", "warn")
	t.Setenv("CHATMETA_DEBUG", "")

	if got := LoadLogConfigFromEnv(LogConfig{Level: "info"}); got.Level != "warn" {
		t.Errorf("got %q, want warn", got.Level)
	}

	t.Setenv("CHATMETA_DEBUG", "1")
	if got := LoadLogConfigFromEnv(LogConfig{Level: "info"}); got.Level != "debug" {
		t.Errorf("got %q, want debug", got.Level)
	}
}
