package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .alkimiya.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to alkimiya! Let's configure your explorer.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select generation provider",
		Items: []string{"google", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)
	preset := GetPreset(provider)

	// 2. Default display language.
	langPrompt := promptui.Select{
		Label: "Default display language",
		Items: []string{
			"fr — Français",
			"ar — العربية",
		},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	lang := []string{"fr", "ar"}[langIdx]

	// 3. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Local server port",
		Default: "8641",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Data directory for the usage ledger and lab reports.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory",
		Default: ".alkimiya",
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// Build the config.
	cfg := &Config{
		Provider:             provider,
		Model:                preset.Model,
		TTSModel:             preset.TTSModel,
		EmbeddingModel:       preset.EmbeddingModel,
		VoiceFr:              preset.VoiceFr,
		VoiceAr:              preset.VoiceAr,
		Voice:                preset.Voice,
		Lang:                 lang,
		Port:                 port,
		DataDir:              dataDir,
		MaxRequestsPerMinute: 30,
	}

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running alkimiya serve.\n", envVar)
		}
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}
