package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dictmark-dev/dictmark/internal/config"
	"github.com/dictmark-dev/dictmark/internal/errors"
	"github.com/dictmark-dev/dictmark/internal/preview"
	"github.com/dictmark-dev/dictmark/pkg/media"
	"github.com/dictmark-dev/dictmark/pkg/profile"
	"github.com/dictmark-dev/dictmark/pkg/render"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		configPath  string
		profilePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the preview server",
		Long: `Serve runs the preview harness: POST /render and a websocket live
preview on /live, illustration media under the configured prefix, and
Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			// Flag wins over dictmark.json.
			listen := addr
			if listen == "" {
				listen = cfg.Address()
			}

			var prof *profile.Profile
			if profilePath == "" {
				profilePath = cfg.Profile
			}
			if profilePath != "" {
				prof, err = profile.Load(profilePath)
				if err != nil {
					return errors.FromError(err, "D100")
				}
			}

			renderer := render.NewRenderer(render.Config{
				Media:           mediaResolver(cfg),
				DefaultLanguage: cfg.Render.DefaultLanguage,
				Metrics:         render.NewMetrics(nil),
			})

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			renderer.SetLogger(logger.With("component", "render"))

			srv := preview.New(preview.Options{
				Address:        listen,
				Renderer:       renderer,
				DefaultProfile: prof,
				MediaDir:       cfg.Media.Dir,
			})
			srv.SetLogger(logger.With("component", "preview"))

			printBanner()
			info("listening on http://%s", listen)
			if prof != nil {
				info("default profile: %s (%d rules)", profilePath, len(prof.Ordered()))
			}
			return srv.Start()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides dictmark.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to dictmark.json")
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Default display profile JSON file")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.New(), nil
	}
	return config.Load(wd)
}

// mediaResolver builds the illustration resolver from config: manifest-based
// when a manifest is configured and loadable, passthrough otherwise.
func mediaResolver(cfg *config.Config) media.Resolver {
	if cfg.Media.Manifest != "" {
		if m, err := media.LoadManifest(cfg.Media.Manifest); err == nil {
			return media.NewResolver(m, cfg.Media.Prefix)
		}
		warn("media manifest %s could not be loaded, using passthrough", cfg.Media.Manifest)
	}
	return media.NewPassthroughResolver(cfg.Media.Prefix)
}
