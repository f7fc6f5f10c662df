package genai

import (
	"fmt"
	"os"
)

// Options configures a generator built by New.
type Options struct {
	Model    string // content/mixing model
	TTSModel string // speech synthesis model
	VoiceFr  string // Gemini prebuilt voice for French
	VoiceAr  string // Gemini prebuilt voice for Arabic
	Voice    string // OpenAI voice
	OnUsage  UsageFunc
}

// New creates a generator for the given provider type.
// Supported provider types: "google", "openai". Construction fails fast with
// ErrMissingAPIKey when the provider credential is not in the environment.
func New(providerType string, opts Options) (Generator, error) {
	switch providerType {
	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is not set: %w", ErrMissingAPIKey)
		}
		return NewGoogleClient(apiKey, opts), nil

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set: %w", ErrMissingAPIKey)
		}
		return NewOpenAIClient(apiKey, opts), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
