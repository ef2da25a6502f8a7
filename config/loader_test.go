package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Base struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"base"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAMLConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", "base:\n  url: https://api.test\n  timeout: 30s\n")

	var cfg testConfig
	if err := Load("test", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Base.URL != "https://api.test" {
		t.Errorf("unexpected url %q", cfg.Base.URL)
	}
	if cfg.Base.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Base.Timeout)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", "base:\n  timeout: 30s\n")

	t.Setenv("BASE_TIMEOUT", "5s")

	var cfg testConfig
	if err := Load("test", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Base.Timeout != 5*time.Second {
		t.Errorf("environment must win over the file, got %v", cfg.Base.Timeout)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "BASE_URL=https://env.test\n")
	defer func() { _ = os.Unsetenv("BASE_URL") }()

	var cfg testConfig
	if err := Load("test", &cfg, WithEnvFile(envFile)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Base.URL != "https://env.test" {
		t.Errorf("unexpected url %q", cfg.Base.URL)
	}
}

func TestLoad_MissingFilesIsNotAnError(t *testing.T) {
	var cfg testConfig
	if err := Load("test", &cfg,
		WithConfigFile(filepath.Join(t.TempDir(), "absent.yml"))); err != nil {
		t.Fatalf("load without files: %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", "base: [\n")

	var cfg testConfig
	if err := Load("test", &cfg, WithConfigFile(cfgFile)); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
