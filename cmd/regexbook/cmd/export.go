package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [domain...]",
		Short: "Write the catalogue, or selected domains, as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, formatJSON, formatYAML); err != nil {
				return err
			}

			domains := a.registry.Domains()
			if len(args) > 0 {
				domains = make([]pattern.Domain, 0, len(args))
				for _, key := range args {
					d, err := a.registry.Domain(key)
					if err != nil {
						return err
					}
					domains = append(domains, d)
				}
			}
			return encode(cmd.OutOrStdout(), format, domains)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json or yaml")
	return cmd
}
