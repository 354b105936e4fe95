package cli

import (
	"fmt"

	"github.com/mx-space/folio/internal/app"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/modules/export"
	"github.com/mx-space/folio/internal/modules/publish"
	"github.com/spf13/cobra"
)

func newPublishCommand() *cobra.Command {
	var (
		target     string
		out        string
		skipExport bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export strictly, then upload the export to S3 or push it to a git branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, true, func(cfg *config.AppConfig) { cfg.Strict = true })
			if err != nil {
				return err
			}
			defer rt.log.Sync()

			publisher, err := publish.New(target, rt.cfg.Publish, rt.log)
			if err != nil {
				return err
			}
			if out == "" {
				out = rt.cfg.ExportDir()
			}
			if !skipExport {
				if _, err := export.New(rt.app.Router(), rt.app.Catalog(), app.APIPrefix, rt.log).Export(cmd.Context(), out); err != nil {
					return err
				}
			}

			report, err := publisher.Publish(cmd.Context(), out)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("published %d files to %s", report.Files, report.Target)
			if report.Commit != "" {
				msg += " (" + report.Commit[:7] + ")"
			}
			fmt.Fprintln(rt.stdout, msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", publish.TargetS3, "publish target: s3 or git")
	cmd.Flags().StringVarP(&out, "out", "o", "", "export directory (default paths.export or ./out)")
	cmd.Flags().BoolVar(&skipExport, "skip-export", false, "publish an existing export as is")
	return cmd
}
