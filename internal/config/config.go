// Package config loads techstack settings from the environment, an optional
// .env file and an optional config file.
//
// Precedence, highest first: TECHSTACK_* environment variables, the config
// file, built-in defaults. The .env file only fills variables that are not
// already set. When api_key is unset, OPENAI_API_KEY (or GEMINI_API_KEY for
// the gemini provider) is used.
//
// A config file is either the path given explicitly or the first
// techstack.{yaml,yml,toml,json} found in the working directory or in
// $XDG_CONFIG_HOME/techstack (~/.config/techstack).
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/matzehuels/techstack/pkg/completion"
	"github.com/matzehuels/techstack/pkg/errors"
)

const (
	appName   = "techstack"
	envPrefix = "TECHSTACK"

	// DefaultAddr is the listen address of the HTTP API.
	DefaultAddr = ":8080"
)

// Keys understood in config files and as TECHSTACK_<KEY> variables.
const (
	KeyProvider    = "provider"
	KeyModel       = "model"
	KeyAPIKey      = "api_key"
	KeyBaseURL     = "base_url"
	KeyMaxAttempts = "max_attempts"
	KeyBaseDelay   = "base_delay"
	KeyTimeout     = "timeout"
	KeyRules       = "rules"
	KeyAddr        = "addr"
)

// Config is the resolved application configuration.
type Config struct {
	Completion completion.Config
	Rules      string // Rules file path, "" for the built-in tables
	Addr       string // HTTP API listen address
	File       string // Config file that was read, "" if none
}

// Options controls where Load looks.
type Options struct {
	File     string   // Explicit config file, skips the search
	EnvFiles []string // .env files, default ".env"
	Dirs     []string // Search directories, default cwd and the XDG dir
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := completion.DefaultConfig()
	v.SetDefault(KeyProvider, defaults.Provider)
	v.SetDefault(KeyMaxAttempts, defaults.MaxAttempts)
	v.SetDefault(KeyBaseDelay, defaults.BaseDelay)
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyAddr, DefaultAddr)
	for _, key := range []string{KeyModel, KeyAPIKey, KeyBaseURL, KeyRules} {
		v.SetDefault(key, "")
	}

	if err := readFile(v, opts); err != nil {
		return nil, err
	}

	cfg := &Config{
		Completion: completion.Config{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
			Model:       strings.TrimSpace(v.GetString(KeyModel)),
			APIKey:      strings.TrimSpace(v.GetString(KeyAPIKey)),
			BaseURL:     strings.TrimSpace(v.GetString(KeyBaseURL)),
			MaxAttempts: v.GetInt(KeyMaxAttempts),
			BaseDelay:   v.GetDuration(KeyBaseDelay),
			Timeout:     v.GetDuration(KeyTimeout),
		},
		Rules: strings.TrimSpace(v.GetString(KeyRules)),
		Addr:  strings.TrimSpace(v.GetString(KeyAddr)),
		File:  v.ConfigFileUsed(),
	}
	if cfg.Completion.APIKey == "" {
		cfg.Completion.APIKey = fallbackKey(cfg.Completion.Provider)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads each file in turn. A missing file is skipped.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "read env file %s", f)
		}
	}
	return nil
}

func readFile(v *viper.Viper, opts Options) error {
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", opts.File)
		}
		return nil
	}

	dirs := opts.Dirs
	if dirs == nil {
		dirs = []string{"."}
		if dir, err := Dir(); err == nil {
			dirs = append(dirs, dir)
		}
	}
	v.SetConfigName(appName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}
	return nil
}

func fallbackKey(provider string) string {
	if provider == completion.ProviderGemini {
		return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

func (c *Config) validate() error {
	switch c.Completion.Provider {
	case completion.ProviderOpenAI, completion.ProviderGemini, completion.ProviderOllama:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown provider %q (want openai, gemini or ollama)", c.Completion.Provider)
	}
	if c.Completion.MaxAttempts < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "%s must be at least 1", KeyMaxAttempts)
	}
	if c.Completion.BaseDelay < 0 || c.Completion.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s and %s must not be negative", KeyBaseDelay, KeyTimeout)
	}
	return nil
}

// HasCredentials reports whether the configured provider can be called.
// Ollama runs locally and needs no key.
func (c *Config) HasCredentials() bool {
	return c.Completion.Provider == completion.ProviderOllama || c.Completion.APIKey != ""
}

// Dir returns the per-user config directory ($XDG_CONFIG_HOME/techstack).
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
