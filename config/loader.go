package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads configuration for the named component into cfg. It looks for
// config.yml and .env near the working directory unless explicit paths are
// given, binds environment variables, and unmarshals the merged result.
func Load(name string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFile(lc.FileSystem, name, "config.yml")
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFile(lc.FileSystem, name, ".env")
	}

	v := viper.New()

	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
		// Re-bind to pick up variables the .env file introduced.
		bindEnvVars(v)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	return nil
}

// findFile searches standard locations for a config artifact.
func findFile(fs FileSystem, name, fileName string) string {
	searchPaths := []string{
		fmt.Sprintf("./config/%s/%s", name, fileName),
		fmt.Sprintf("./config/%s", fileName),
		fmt.Sprintf("./%s", fileName),
		fmt.Sprintf("../config/%s", fileName),
		fmt.Sprintf("../%s", fileName),
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnvVars makes every environment variable visible to viper under both
// its lowercase form and the dotted nested form, so GATEWAYS_BILLING_URL
// resolves the gateways.billing.url key.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.ToLower(pair[0])
		v.Set(key, pair[1])
		if strings.Contains(key, "_") {
			v.Set(strings.ReplaceAll(key, "_", "."), pair[1])
		}
	}
}
