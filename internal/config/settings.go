package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// SettingsPathEnv points at an optional YAML file with logging settings.
const SettingsPathEnv = "MINIGREP_CONFIG"

type Settings struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Env:      "local",
		LogLevel: "warn",
		LogFile:  "logs/minigrep.log",
	}
}

// LoadSettings reads the file at path over the defaults, so omitted keys keep their default values.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultSettings()
	if err = yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err = s.Level(); err != nil {
		return nil, err
	}
	return s, nil
}

func ProvideSettings() (*Settings, error) {
	path := os.Getenv(SettingsPathEnv)
	if path == "" {
		return DefaultSettings(), nil
	}
	return LoadSettings(path)
}

func (s *Settings) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
