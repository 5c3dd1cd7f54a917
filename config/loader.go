package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts file lookups so loading can be tested without
// touching the real filesystem.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// osFileSystem implements FileSystem using actual file operations.
type osFileSystem struct{}

func (osFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// loaderConfig holds dependencies and optional file overrides.
type loaderConfig struct {
	fs         FileSystem
	configFile string
	envFile    string
}

// Option customizes how Load resolves configuration files.
type Option func(*loaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(lc *loaderConfig) { lc.fs = fs }
}

// WithConfigFile sets an explicit config file path, skipping the search.
func WithConfigFile(path string) Option {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path, skipping the search.
func WithEnvFile(path string) Option {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load loads configuration for a service into the provided cfg struct.
// It searches for config.yml and .env files in standard locations,
// binds environment variables, and unmarshals the result into cfg.
func Load(service string, cfg interface{}, opts ...Option) error {
	lc := loaderConfig{fs: osFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.configFile == "" {
		lc.configFile = findConfigFile(lc.fs, service)
	}
	if lc.envFile == "" {
		lc.envFile = findEnvFile(lc.fs, service)
	}

	v := viper.New()

	if lc.configFile != "" && lc.fs.Exists(lc.configFile) {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.configFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if lc.envFile != "" && lc.fs.Exists(lc.envFile) {
		if err := lc.fs.LoadEnv(lc.envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", lc.envFile, err)
		}
		// Re-bind after loading .env so new variables take effect.
		bindEnvVars(v)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", service, err)
	}
	return nil
}

// findConfigFile searches for config.yml in standard locations.
func findConfigFile(fs FileSystem, service string) string {
	searchPaths := []string{
		fmt.Sprintf("./config/%s.yml", service),
		fmt.Sprintf("./%s.yml", service),
		"./config/config.yml",
		"./config.yml",
		"../config.yml",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for .env files in standard locations.
func findEnvFile(fs FileSystem, service string) string {
	searchPaths := []string{
		fmt.Sprintf("./.env.%s", service),
		"./.env",
		"../.env",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnvVars maps UPPER_SNAKE environment variables onto viper keys
// so REST_BASE_URL satisfies both "rest_base_url" and "rest.base_url".
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range envKeyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants generates the viper key spellings an environment
// variable may bind to, e.g.
//
//	REST_BASE_URL -> [rest_base_url, rest.base.url, rest.base_url]
func envKeyVariants(key string) []string {
	lower := strings.ToLower(key)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{
		lower,
		strings.ReplaceAll(lower, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
