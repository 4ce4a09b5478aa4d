package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caportal/prorate-calculator/internal/microlearning"
)

func newLearnCmd() *cobra.Command {
	var section, search string
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Read the contract-admin microlearning guide",
		Long:  "learn prints the table of contents of the microlearning guide, or one section with --section.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if section != "" {
				s, ok := microlearning.Find(section)
				if !ok {
					return fmt.Errorf("no microlearning section named %q", section)
				}
				fmt.Fprint(out, microlearning.RenderText(s))
				if children := microlearning.Children(s.Slug); len(children) > 0 {
					fmt.Fprintln(out, "\nIn this section:")
					for _, c := range children {
						fmt.Fprintf(out, "  %s [%s]\n", c.TOCTitle, c.Slug)
					}
				}
				return nil
			}

			entries := microlearning.Search(search)
			if search == "" {
				fmt.Fprintln(out, microlearning.Intro())
				fmt.Fprintln(out)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No matching topics found.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s%s [%s]\n", strings.Repeat("  ", e.Level-1), e.Title, e.Slug)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "print one section by slug")
	cmd.Flags().StringVar(&search, "search", "", "filter the table of contents by title")
	return cmd
}
