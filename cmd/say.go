package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/audio"
	"github.com/ykhadiri/alkimiya/internal/elements"
)

var (
	sayLang string
	sayOut  string
)

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Synthesize speech and play it (or save a WAV file)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lang := elements.Lang(sayLang)
		if !lang.Valid() {
			return fmt.Errorf("invalid --lang %q: must be fr or ar", sayLang)
		}

		database, store, err := openLedger(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		gen, err := newGenerator(cfg, store)
		if err != nil {
			return fmt.Errorf("creating generator: %w", err)
		}

		pcm, err := gen.Speech(context.Background(), args[0], lang)
		if err != nil {
			return err
		}

		if sayOut != "" {
			f, err := os.Create(sayOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", sayOut, err)
			}
			defer f.Close()
			if err := audio.WriteWAV(f, pcm); err != nil {
				return fmt.Errorf("writing wav: %w", err)
			}
			fmt.Printf("Wrote %s (%s)\n", sayOut, audio.Duration(pcm).Round(time.Millisecond))
			return nil
		}

		factory, err := audio.NewOtoFactory()
		if err != nil {
			return fmt.Errorf("opening audio device: %w (use --out to save a file instead)", err)
		}
		player := audio.NewController(factory)
		events, cancel := player.Subscribe()
		defer cancel()

		if err := player.Play(audio.CategoryReader, pcm); err != nil {
			return err
		}
		// Block until playback finishes.
		for ev := range events {
			if ev.Category == audio.CategoryReader && ev.Ended {
				break
			}
		}
		return nil
	},
}

func init() {
	sayCmd.Flags().StringVar(&sayLang, "lang", "fr", "speech language (fr or ar)")
	sayCmd.Flags().StringVar(&sayOut, "out", "", "write a WAV file instead of playing")
	rootCmd.AddCommand(sayCmd)
}
