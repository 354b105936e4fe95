package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mx-space/folio/internal/app"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/modules/export"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var (
		out    string
		strict bool
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every public route to static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, true, func(cfg *config.AppConfig) {
				cfg.Strict = cfg.Strict || strict
			})
			if err != nil {
				return err
			}
			defer rt.log.Sync()

			if out == "" {
				out = rt.cfg.ExportDir()
			}
			exporter := export.New(rt.app.Router(), rt.app.Catalog(), app.APIPrefix, rt.log)
			res, err := exporter.Export(cmd.Context(), out)
			if err != nil {
				return err
			}
			printResult(rt, res)
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Fprintln(rt.stdout, "watching for changes, press Ctrl+C to stop")
			return exporter.Watch(ctx, out, export.DefaultDebounce, func(res *export.Result, err error) {
				if err == nil {
					printResult(rt, res)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default paths.export or ./out)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first malformed content file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "export again whenever content changes")
	return cmd
}

func printResult(rt *runtime, res *export.Result) {
	fmt.Fprintf(rt.stdout, "exported %d files (%d bytes) to %s in %s\n",
		len(res.Files), res.Bytes, res.Dir, res.Duration.Round(time.Millisecond))
}
