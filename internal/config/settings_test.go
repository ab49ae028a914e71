package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestProvideSettingsDefaults(t *testing.T) {
	t.Setenv(SettingsPathEnv, "")
	s, err := ProvideSettings()
	if err != nil {
		t.Fatalf("ProvideSettings returned error: %v", err)
	}
	if *s != *DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := writeFile(t, "minigrep.yaml", "env: prod\nlog_level: debug\n")
	t.Setenv(SettingsPathEnv, path)

	s, err := ProvideSettings()
	if err != nil {
		t.Fatalf("ProvideSettings returned error: %v", err)
	}
	if s.Env != "prod" || s.LogLevel != "debug" {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.LogFile != DefaultSettings().LogFile {
		t.Fatalf("log_file should keep default, got %q", s.LogFile)
	}
	lvl, err := s.Level()
	if err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("Level() = %v, %v", lvl, err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "env: [prod\n")
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadSettingsBadLevel(t *testing.T) {
	path := writeFile(t, "level.yaml", "log_level: loud\n")
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
