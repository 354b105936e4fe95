package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mx-space/folio/internal/modules/content/casestudy"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"github.com/mx-space/folio/internal/modules/content/daily"
	"github.com/mx-space/folio/internal/modules/content/post"
	"github.com/mx-space/folio/internal/modules/content/tool"
	"github.com/spf13/cobra"
)

var listKinds = []string{post.Kind, daily.Kind, tool.Kind, casestudy.Kind}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "list <kind>",
		Short:     "List one content kind as a table",
		Long:      "List one content kind as a table. Kinds: " + strings.Join(listKinds, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, true, nil)
			if err != nil {
				return err
			}
			defer rt.log.Sync()
			return printKind(rt.stdout, rt.app.Catalog(), args[0])
		},
	}
}

func printKind(out io.Writer, cat *catalog.Catalog, kind string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	switch kind {
	case post.Kind:
		posts, err := cat.Posts.List("")
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "SLUG\tDATE\tTITLE\tTAGS\tMIN")
		for _, p := range posts {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.Slug, p.Date, p.Title, strings.Join(p.Tags, ","), p.ReadingTime)
		}
	case daily.Kind:
		entries, err := cat.Daily.List(daily.ListQuery{})
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "SLUG\tDATE\tMOOD\tTITLE")
		for _, d := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Slug, d.Date, d.Mood, d.Title)
		}
	case tool.Kind:
		tools, err := cat.Tools.List("")
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "SLUG\tNAME\tFEATURED\tTAGS")
		for _, t := range tools {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Slug, t.Name, mark(t.Featured), strings.Join(t.Tags, ","))
		}
	case casestudy.Kind:
		studies, err := cat.CaseStudies.List(casestudy.ListQuery{})
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "SLUG\tYEAR\tTITLE\tCATEGORY\tFEATURED")
		for _, cs := range studies {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", cs.Slug, cs.Year, cs.Title, cs.Category, mark(cs.Featured))
		}
	default:
		return fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(listKinds, ", "))
	}
	return tw.Flush()
}

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
