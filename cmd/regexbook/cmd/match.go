package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regexbook/pkg/logger"
	"github.com/dmitrymomot/regexbook/pkg/validator"
)

func newMatchCmd(a *app) *cobra.Command {
	var (
		fromStdin bool
		semantic  bool
	)

	cmd := &cobra.Command{
		Use:   "match <domain> <variant> [input...]",
		Short: "Test inputs against a variant",
		Long: `Prints "true" or "false" per input. With --stdin each line of standard
input is tested. With --semantic a match must also pass the domain's
extra checks, e.g. a real calendar day for dates.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.registry.Variant(args[0], args[1])
			if err != nil {
				return err
			}
			m, err := a.compiler.Compile(v)
			if err != nil {
				return err
			}

			inputs := args[2:]
			if fromStdin {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					inputs = append(inputs, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, in := range inputs {
				ok, err := m.Match(in)
				if err != nil {
					a.log.WarnContext(cmd.Context(), "match aborted",
						logger.Domain(args[0]), logger.Variant(v.ID), logger.Input(in), logger.Error(err))
				}
				if ok && semantic {
					ok = validator.Apply(validator.SemanticRules(args[0], v.ID, "input", in)...) == nil
				}
				fmt.Fprintf(out, "%t\t%q\n", ok, in)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read inputs from standard input, one per line")
	cmd.Flags().BoolVar(&semantic, "semantic", false, "Also apply the domain's checksum and calendar checks")
	return cmd
}
