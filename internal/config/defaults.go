package config

// ProviderPreset describes the default models for a provider.
type ProviderPreset struct {
	Model          string
	TTSModel       string
	EmbeddingModel string
	VoiceFr        string
	VoiceAr        string
	Voice          string
}

// providerPresets maps each provider to its model choices.
var providerPresets = map[ProviderType]ProviderPreset{
	ProviderGoogle: {
		Model:          "gemini-2.5-flash",
		TTSModel:       "gemini-2.5-flash-preview-tts",
		EmbeddingModel: "text-embedding-004",
		VoiceFr:        "Zephyr",
		VoiceAr:        "Charon",
	},
	ProviderOpenAI: {
		Model:          "gpt-4o-mini",
		TTSModel:       "gpt-4o-mini-tts",
		EmbeddingModel: "text-embedding-3-small",
		Voice:          "alloy",
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	preset := providerPresets[ProviderGoogle]
	return &Config{
		Provider:             ProviderGoogle,
		Model:                preset.Model,
		TTSModel:             preset.TTSModel,
		EmbeddingModel:       preset.EmbeddingModel,
		VoiceFr:              preset.VoiceFr,
		VoiceAr:              preset.VoiceAr,
		Lang:                 "fr",
		Port:                 8641,
		DataDir:              ".alkimiya",
		MaxRequestsPerMinute: 30,
	}
}

// GetPreset returns the model preset for the given provider. Returns the
// Google preset if the provider is not recognized.
func GetPreset(provider ProviderType) ProviderPreset {
	if preset, ok := providerPresets[provider]; ok {
		return preset
	}
	return providerPresets[ProviderGoogle]
}
