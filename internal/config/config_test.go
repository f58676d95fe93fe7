package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/techstack/pkg/completion"
	"github.com/matzehuels/techstack/pkg/errors"
)

// isolate clears every variable Load reads and points the search at an
// empty directory.
func isolate(t *testing.T) Options {
	t.Helper()
	for _, key := range []string{
		"TECHSTACK_PROVIDER", "TECHSTACK_MODEL", "TECHSTACK_API_KEY", "TECHSTACK_BASE_URL",
		"TECHSTACK_MAX_ATTEMPTS", "TECHSTACK_BASE_DELAY", "TECHSTACK_TIMEOUT",
		"TECHSTACK_RULES", "TECHSTACK_ADDR", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	return Options{
		Dirs:     []string{dir},
		EnvFiles: []string{filepath.Join(dir, ".env")},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(isolate(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := cfg.Completion
	if c.Provider != completion.ProviderOpenAI || c.MaxAttempts != 3 || c.BaseDelay != time.Second {
		t.Errorf("completion = %+v", c)
	}
	if cfg.Addr != DefaultAddr || cfg.Rules != "" || cfg.File != "" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.HasCredentials() {
		t.Error("HasCredentials() = true without a key")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	opts := isolate(t)
	t.Setenv("TECHSTACK_PROVIDER", "Gemini")
	t.Setenv("TECHSTACK_MODEL", "gemini-2.5-pro")
	t.Setenv("TECHSTACK_MAX_ATTEMPTS", "5")
	t.Setenv("TECHSTACK_BASE_DELAY", "250ms")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := cfg.Completion
	if c.Provider != completion.ProviderGemini || c.Model != "gemini-2.5-pro" {
		t.Errorf("provider/model = %q/%q", c.Provider, c.Model)
	}
	if c.MaxAttempts != 5 || c.BaseDelay != 250*time.Millisecond {
		t.Errorf("retry = %d/%v", c.MaxAttempts, c.BaseDelay)
	}
	if c.APIKey != "g-key" {
		t.Errorf("APIKey = %q, want the GEMINI_API_KEY fallback", c.APIKey)
	}
}

func TestLoadFileSearch(t *testing.T) {
	opts := isolate(t)
	writeFile(t, opts.Dirs[0], "techstack.yaml", "provider: ollama\nmodel: llama3.1\nrules: ./rules.toml\ntimeout: 30s\n")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Completion.Provider != completion.ProviderOllama || cfg.Completion.Model != "llama3.1" {
		t.Errorf("completion = %+v", cfg.Completion)
	}
	if cfg.Rules != "./rules.toml" || cfg.Completion.Timeout != 30*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if filepath.Base(cfg.File) != "techstack.yaml" {
		t.Errorf("File = %q", cfg.File)
	}
	if !cfg.HasCredentials() {
		t.Error("ollama needs no key")
	}
}

func TestLoadExplicitTOML(t *testing.T) {
	opts := isolate(t)
	opts.File = writeFile(t, t.TempDir(), "custom.toml", "api_key = \"from-file\"\nmax_attempts = 2\n")
	t.Setenv("TECHSTACK_MAX_ATTEMPTS", "4")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Completion.APIKey != "from-file" {
		t.Errorf("APIKey = %q", cfg.Completion.APIKey)
	}
	if cfg.Completion.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, env must win over the file", cfg.Completion.MaxAttempts)
	}
}

func TestLoadDotEnv(t *testing.T) {
	opts := isolate(t)
	writeFile(t, opts.Dirs[0], ".env", "OPENAI_API_KEY=sk-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("OPENAI_API_KEY") })

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Completion.APIKey != "sk-dotenv" {
		t.Errorf("APIKey = %q", cfg.Completion.APIKey)
	}
}

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	opts := isolate(t)
	second := writeFile(t, t.TempDir(), "local.env", "TECHSTACK_MODEL=gpt-test\n")
	opts.EnvFiles = append(opts.EnvFiles, second)
	t.Cleanup(func() { os.Unsetenv("TECHSTACK_MODEL") })

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Completion.Model != "gpt-test" {
		t.Errorf("Model = %q", cfg.Completion.Model)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, opts *Options)
		code  errors.Code
	}{
		{
			name:  "unknown provider",
			setup: func(t *testing.T, _ *Options) { t.Setenv("TECHSTACK_PROVIDER", "claude-bot") },
			code:  errors.ErrCodeInvalidInput,
		},
		{
			name:  "zero attempts",
			setup: func(t *testing.T, _ *Options) { t.Setenv("TECHSTACK_MAX_ATTEMPTS", "0") },
			code:  errors.ErrCodeInvalidInput,
		},
		{
			name: "missing explicit file",
			setup: func(t *testing.T, opts *Options) {
				opts.File = filepath.Join(t.TempDir(), "absent.yaml")
			},
			code: errors.ErrCodeInvalidPath,
		},
		{
			name: "malformed env file",
			setup: func(t *testing.T, opts *Options) {
				writeFile(t, opts.Dirs[0], ".env", "OPENAI_API_KEY=\"sk-unterminated\n")
			},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "malformed file",
			setup: func(t *testing.T, opts *Options) {
				writeFile(t, opts.Dirs[0], "techstack.yaml", "provider: [openai\n")
			},
			code: errors.ErrCodeInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolate(t)
			tt.setup(t, &opts)
			_, err := Load(opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "techstack") {
		t.Errorf("Dir() = %q", dir)
	}
}
