package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Provider != ProviderGoogle {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.VoiceFr == "" || cfg.VoiceAr == "" {
		t.Error("default config must name both narration voices")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != DefaultConfig().Model {
		t.Errorf("model = %q, want default", cfg.Model)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".alkimiya.yml")
	content := []byte("provider: openai\nmodel: gpt-4o\ntts_model: tts-1\nlang: ar\nport: 9000\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4o" || cfg.TTSModel != "tts-1" {
		t.Errorf("models = %q / %q", cfg.Model, cfg.TTSModel)
	}
	if cfg.Lang != "ar" || cfg.Port != 9000 {
		t.Errorf("lang = %q, port = %d", cfg.Lang, cfg.Port)
	}
	// Untouched fields keep their defaults.
	if cfg.DataDir != ".alkimiya" {
		t.Errorf("data_dir = %q, want default", cfg.DataDir)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".alkimiya.yml")
	if err := os.WriteFile(path, []byte("model: gemini-2.0-flash\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ALKIMIYA_MODEL", "gemini-2.5-flash")
	t.Setenv("ALKIMIYA_LANG", "ar")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q, env must win over file", cfg.Model)
	}
	if cfg.Lang != "ar" {
		t.Errorf("lang = %q, want ar", cfg.Lang)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"missing provider", func(c *Config) { c.Provider = "" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "anthropic" }, false},
		{"missing model", func(c *Config) { c.Model = "" }, false},
		{"missing tts model", func(c *Config) { c.TTSModel = "" }, false},
		{"bad lang", func(c *Config) { c.Lang = "en" }, false},
		{"bad port", func(c *Config) { c.Port = -1 }, false},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, false},
		{"negative rate limit", func(c *Config) { c.MaxRequestsPerMinute = -5 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate should fail")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".alkimiya.yml")
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.Model = "gpt-4o-mini"
	cfg.Voice = "nova"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Provider != cfg.Provider || loaded.Model != cfg.Model || loaded.Voice != cfg.Voice {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if got := APIKeyEnvVar(ProviderGoogle); got != "GOOGLE_API_KEY" {
		t.Errorf("google = %q", got)
	}
	if got := APIKeyEnvVar(ProviderOpenAI); got != "OPENAI_API_KEY" {
		t.Errorf("openai = %q", got)
	}
	if got := APIKeyEnvVar("other"); got != "" {
		t.Errorf("unknown = %q", got)
	}
}
