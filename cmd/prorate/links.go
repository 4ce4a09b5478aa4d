package main

import (
	"fmt"
	"html"

	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/links"
	"github.com/caportal/prorate-calculator/internal/markup"
)

func newLinksCmd() *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "links [SLUG]",
		Short: "List the portal's quick links",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := links.All()
			if len(args) == 1 {
				l, ok := links.Find(args[0])
				if !ok {
					return fmt.Errorf("no link named %q", args[0])
				}
				list = []links.Link{l}
			}
			out := cmd.OutOrStdout()
			for _, l := range list {
				if asHTML {
					fmt.Fprintf(out, "<h5>%s</h5>\n<p>%s</p>\n<a href=\"%s\">%s</a>\n", html.EscapeString(l.Title), markup.RenderHTML(l.Description), html.EscapeString(l.Href), html.EscapeString(l.CallToAction()))
					continue
				}
				fmt.Fprintf(out, "%s [%s]\n  %s\n  %s: %s\n\n", l.Title, l.Slug, markup.RenderText(l.Description), l.CallToAction(), l.Href)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "render descriptions as HTML")
	return cmd
}
