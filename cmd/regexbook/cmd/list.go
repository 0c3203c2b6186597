package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List domains and their variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOMAIN\tTITLE\tVARIANTS")
			for _, d := range a.registry.Domains() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Key, d.Title, strings.Join(d.VariantIDs(), ", "))
			}
			return tw.Flush()
		},
	}
}
