// Package cli implements the folio command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mx-space/folio/internal/app"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/pkg/nativelog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
)

// NewRootCommand builds the folio command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Content index and API for a Markdown blog and portfolio",
		Long: `folio reads posts, daily entries, tools and case studies from Markdown
files with frontmatter, serves them as a JSON API with feeds and a sitemap,
and exports or publishes the whole site as static files.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newServeCommand())
	root.AddCommand(newExportCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newListCommand())
	root.AddCommand(newPublishCommand())
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtime is what every command needs: config, logger and the app.
type runtime struct {
	cfg    *config.AppConfig
	log    *zap.Logger
	app    *app.App
	stdout io.Writer
}

// setup loads config and builds the app. quiet keeps stdout for command
// output and sends warnings to stderr.
func setup(cmd *cobra.Command, quiet bool, adjust func(*config.AppConfig)) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(cfg)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	log, err := nativelog.NewZapLogger(nativelog.Options{Dir: cfg.LogDir(), Level: level, Quiet: quiet})
	if err != nil {
		log, _ = zap.NewProduction()
		log.Warn("native log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}

	application, err := app.New(log, cfg)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, log: log, app: application, stdout: cmd.OutOrStdout()}, nil
}
