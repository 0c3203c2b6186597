package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
	"github.com/dmitrymomot/regexbook/pkg/snippet"
)

func newShowCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "show <domain> [variant]",
		Short: "Print a domain, or one variant with its cases and snippets",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.registry.Domain(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				fmt.Fprintf(out, "%s (%s)\n%s\n\n", d.Title, d.Key, d.Description)
				for _, v := range d.Variants {
					printVariantHeader(cmd, v)
				}
				return nil
			}

			v, err := a.registry.Variant(d.Key, args[1])
			if err != nil {
				return err
			}
			printVariantHeader(cmd, v)

			fmt.Fprintln(out, "Cases:")
			for _, c := range v.Cases {
				mark := "reject"
				if c.Expected {
					mark = "accept"
				}
				fmt.Fprintf(out, "  %-6s %q", mark, c.Input)
				if c.Note != "" {
					fmt.Fprintf(out, "  # %s", c.Note)
				}
				fmt.Fprintln(out)
			}

			langs := snippet.Languages()
			if lang != "" {
				l, err := snippet.ParseLanguage(lang)
				if err != nil {
					return err
				}
				langs = []snippet.Language{l}
			}
			for _, l := range langs {
				code, err := snippet.Render(l, v)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n[%s]\n%s", l, code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Only print the snippet for this language")
	return cmd
}

func printVariantHeader(cmd *cobra.Command, v pattern.Variant) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", v.ID, v.Title)
	fmt.Fprintf(out, "  source: %s\n", v.Source)
	if v.CaseInsensitive {
		fmt.Fprintln(out, "  flags:  case-insensitive")
	}
	if v.Description != "" {
		fmt.Fprintf(out, "  %s\n", v.Description)
	}
	fmt.Fprintln(out)
}
