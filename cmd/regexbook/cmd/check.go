package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regexbook/pkg/conformance"
	"github.com/dmitrymomot/regexbook/pkg/pattern"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		format  string
		domains []string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run every case of every variant and report failures",
		Long: `Runs the conformance suite. Exits with status 1 if any case fails or any
variant does not compile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}

			selected := a.registry.Domains()
			if len(domains) > 0 {
				selected = make([]pattern.Domain, 0, len(domains))
				for _, key := range domains {
					d, err := a.registry.Domain(key)
					if err != nil {
						return err
					}
					selected = append(selected, d)
				}
			}

			suite, err := a.runner.RunDomains(cmd.Context(), selected)
			if err != nil {
				return err
			}

			summary := suite.Summary()
			if format == formatText {
				writeSummary(cmd.OutOrStdout(), summary)
			} else if err := encode(cmd.OutOrStdout(), format, summary); err != nil {
				return err
			}

			if !summary.OK {
				return errConformanceFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")
	cmd.Flags().StringSliceVarP(&domains, "domain", "d", nil, "Only check these domains")
	return cmd
}

func writeSummary(w io.Writer, s conformance.Summary) {
	for _, ce := range s.CompileErrors {
		fmt.Fprintf(w, "COMPILE %s/%s: %s\n", ce.Domain, ce.Variant, ce.Message)
	}
	for _, f := range s.Failures {
		fmt.Fprintf(w, "FAIL %s\n", f)
	}
	status := "ok"
	if !s.OK {
		status = "FAILED"
	}
	fmt.Fprintf(w, "%s: %d domains, %d variants, %d passed, %d failed in %s (run %s)\n",
		status, s.Domains, s.Variants, s.Passed, s.Failed, s.Duration, s.RunID)
}
