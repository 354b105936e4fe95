package cli

import (
	"fmt"

	"github.com/mx-space/folio/internal/config"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load all content strictly and report malformed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, true, func(cfg *config.AppConfig) { cfg.Strict = true })
			if err != nil {
				return err
			}
			defer rt.log.Sync()

			reports, err := rt.app.Catalog().Check(rt.log)
			for _, r := range reports {
				fmt.Fprintf(rt.stdout, "%-14s %d\n", r.Kind, r.Count)
			}
			if err != nil {
				return fmt.Errorf("content check failed: %w", err)
			}
			fmt.Fprintln(rt.stdout, "ok")
			return nil
		},
	}
}
