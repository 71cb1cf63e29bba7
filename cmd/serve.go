package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yeisme/hellosrv/pkg/configs"
	"github.com/yeisme/hellosrv/pkg/manifest"
	"github.com/yeisme/hellosrv/pkg/server"
	"github.com/yeisme/hellosrv/pkg/watch"
)

var (
	serveHost     string
	servePort     int
	serveManifest string
	serveH2C      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the greeting server",
	Long: `
Start the HTTP server. The manifest version is read once at startup; editing
the manifest afterwards does not change the running server.

Examples:
  # Serve on :3000 using ./package.json
  hellosrv serve

  # Another port and a Cargo.toml manifest
  hellosrv serve --port 8080 --manifest Cargo.toml

  # Also accept cleartext HTTP/2
  hellosrv serve --h2c

Notes:
  - A missing or malformed manifest, or a manifest without a version, stops startup.
  - Every method and path receives the same response.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
}

// addServeFlags registers the serve flags on c; root and serve share them.
func addServeFlags(c *cobra.Command) {
	c.Flags().StringVar(&serveHost, "host", "", "interface to bind (default all)")
	c.Flags().IntVarP(&servePort, "port", "p", configs.DefaultPort, "TCP port to bind")
	c.Flags().StringVarP(&serveManifest, "manifest", "m", "", "path to the manifest file (default package.json)")
	c.Flags().BoolVar(&serveH2C, "h2c", false, "accept cleartext HTTP/2 as well as HTTP/1.1")
}

// applyServeFlags copies explicitly set flags over the loaded configuration.
func applyServeFlags(cmd *cobra.Command, config *configs.Config) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		config.Server.Host = serveHost
	}
	if flags.Changed("port") {
		config.Server.Port = servePort
	}
	if flags.Changed("manifest") {
		config.Manifest.Path = serveManifest
	}
	if flags.Changed("h2c") {
		config.Server.H2C = serveH2C
	}
}

// loadServedVersion reads the manifest once and applies the semver policy.
func loadServedVersion(config configs.ManifestConfig) (string, error) {
	m, err := manifest.Load(config.Path)
	if err != nil {
		log.Error().Err(err).Str("manifest", config.Path).Msg("manifest could not be loaded")
		return "", fmt.Errorf("cannot start without a manifest version: %w", err)
	}

	if err := manifest.CheckSemver(m.Version); err != nil {
		if config.StrictSemver {
			log.Error().Err(err).Str("manifest", m.Path).Msg("manifest version rejected by strict_semver")
			return "", err
		}
		log.Warn().Err(err).Msg("serving a version that is not semver")
	}

	log.Info().Str("manifest", m.Path).Str("format", string(m.Format)).Str("version", m.Version).Msg("manifest loaded")
	return m.Version, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	config := appCtx.Config
	applyServeFlags(cmd, config)
	if err := config.Validate(); err != nil {
		return err
	}

	v, err := loadServedVersion(config.Manifest)
	if err != nil {
		return err
	}

	srv := server.New(config.Server, server.NewHandler(v), log)
	if err := srv.Listen(); err != nil {
		log.Error().Err(err).Msg("listener could not be bound")
		return err
	}
	// 命令上下文结束时立即关闭, 不等待连接排空
	stop := context.AfterFunc(cmd.Context(), func() { _ = srv.Close() })
	defer stop()
	fmt.Fprintf(cmd.OutOrStdout(), "Server running at %s\n", srv.URL())

	if config.Manifest.Watch {
		startManifestWatch(cmd.Context(), config.Manifest, v)
	}

	return srv.Serve()
}

// startManifestWatch reports manifest drift in the background. Failing to set
// up the watcher only costs the warning, so the server keeps running.
func startManifestWatch(ctx context.Context, config configs.ManifestConfig, served string) {
	w, err := watch.New(watch.Options{
		Path:     config.Path,
		Served:   served,
		Debounce: time.Duration(config.Debounce) * time.Millisecond,
		Logger:   log,
	})
	if err != nil {
		log.Warn().Err(err).Msg("manifest drift watch disabled")
		return
	}

	go func() {
		if err := w.Run(ctx, nil); err != nil {
			log.Warn().Err(err).Msg("manifest drift watch stopped")
		}
	}()
}
