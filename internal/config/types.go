package config

// ProviderType identifies a generation provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level alkimiya configuration, corresponding to
// .alkimiya.yml.
type Config struct {
	Provider       ProviderType `yaml:"provider" koanf:"provider"`
	Model          string       `yaml:"model" koanf:"model"`
	TTSModel       string       `yaml:"tts_model" koanf:"tts_model"`
	EmbeddingModel string       `yaml:"embedding_model" koanf:"embedding_model"`

	// Voices used for speech synthesis. VoiceFr and VoiceAr select the
	// Gemini prebuilt voices per language; Voice is the single OpenAI
	// voice, which handles both languages.
	VoiceFr string `yaml:"voice_fr" koanf:"voice_fr"`
	VoiceAr string `yaml:"voice_ar" koanf:"voice_ar"`
	Voice   string `yaml:"voice" koanf:"voice"`

	// Lang is the default display language for CLI output: "fr" or "ar".
	Lang string `yaml:"lang" koanf:"lang"`

	Port    int    `yaml:"port" koanf:"port"`
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// MaxRequestsPerMinute caps calls to the generation gateway.
	// Zero disables the limiter.
	MaxRequestsPerMinute int `yaml:"max_requests_per_minute" koanf:"max_requests_per_minute"`
}
