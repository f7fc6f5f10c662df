package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ykhadiri/alkimiya/internal/config"
	"github.com/ykhadiri/alkimiya/internal/db"
	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
	"github.com/ykhadiri/alkimiya/internal/semantic"
	"github.com/ykhadiri/alkimiya/internal/usage"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `alkimiya init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openLedger opens the usage ledger database under the data directory.
func openLedger(cfg *config.Config) (*db.DB, *usage.Store, error) {
	database, err := db.Open(filepath.Join(cfg.DataDir, "alkimiya.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening ledger database: %w", err)
	}
	return database, usage.NewStore(database), nil
}

// newGenerator builds the configured generation gateway, recording every
// call into the ledger and applying the configured rate limit.
func newGenerator(cfg *config.Config, store *usage.Store) (genai.Generator, error) {
	opts := genai.Options{
		Model:    cfg.Model,
		TTSModel: cfg.TTSModel,
		VoiceFr:  cfg.VoiceFr,
		VoiceAr:  cfg.VoiceAr,
		Voice:    cfg.Voice,
	}
	if store != nil {
		opts.OnUsage = store.Recorder()
	}
	gen, err := genai.New(string(cfg.Provider), opts)
	if err != nil {
		return nil, err
	}
	if cfg.MaxRequestsPerMinute > 0 {
		gen = genai.NewRateLimited(gen, cfg.MaxRequestsPerMinute)
	}
	return gen, nil
}

// newEmbedder builds the embedding client for semantic search.
func newEmbedder(cfg *config.Config) (semantic.Embedder, error) {
	apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderGoogle))
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required for semantic search")
	}
	return semantic.NewGoogleEmbedder(apiKey, cfg.EmbeddingModel), nil
}

// resolveElement accepts an atomic number or a symbol.
func resolveElement(catalog *elements.Catalog, key string) (elements.Element, error) {
	if number, err := strconv.Atoi(key); err == nil {
		if el, ok := catalog.ByNumber(number); ok {
			return el, nil
		}
		return elements.Element{}, fmt.Errorf("unknown atomic number %d", number)
	}
	if el, ok := catalog.BySymbol(key); ok {
		return el, nil
	}
	return elements.Element{}, fmt.Errorf("unknown element %q", key)
}

// displayLang maps the configured language to the dataset tag.
func displayLang(cfg *config.Config) elements.Lang {
	if cfg.Lang == "ar" {
		return elements.LangAr
	}
	return elements.LangFr
}
