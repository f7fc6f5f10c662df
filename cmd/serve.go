package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/audio"
	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/report"
	"github.com/ykhadiri/alkimiya/internal/server"
	"github.com/ykhadiri/alkimiya/internal/usage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local explorer server",
	Long:  `Starts the alkimiya HTTP server: element catalog, detail generation, audio narration and the mixing lab, for a single local user.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
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

		// Audio output is best-effort: a headless host still serves the
		// API, narration endpoints just play into the void.
		factory, err := audio.NewOtoFactory()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio device unavailable: %v\n", err)
			factory = discardFactory()
		}
		player := audio.NewController(factory)

		catalog := elements.NewCatalog()
		srv := server.New(server.Config{
			Port:     cfg.Port,
			DataDir:  cfg.DataDir,
			AllowAll: true,
		}, catalog, gen, player, database)

		// Routes beyond the core explorer surface.
		usage.RegisterRoutes(srv.Router(), store)
		report.RegisterRoutes(srv.Router(), srv.Session(), srv.Mixer())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "alkimiya v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
		fmt.Fprintf(os.Stderr, "  Elements: %d\n", catalog.Len())

		return srv.Start()
	},
}

// discardFactory builds sinks that accept playback calls without a device.
func discardFactory() audio.SinkFactory {
	return func(pcm []byte) (audio.Sink, error) {
		return &discardSink{}, nil
	}
}

// discardSink never reports active playback, so every buffer ends on
// the first poll.
type discardSink struct{}

func (*discardSink) Play()           {}
func (*discardSink) Pause()          {}
func (*discardSink) IsPlaying() bool { return false }
func (*discardSink) Close() error    { return nil }

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
