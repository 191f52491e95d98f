package cmd

import (
	"fmt"

	"github.com/crowdagger/apocalisp/pkg/lisp"
	"github.com/spf13/cobra"
)

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Resolve identifiers in the root environment",
		Long: `Resolve identifiers in the root environment built from --bind flags and the
configuration file.  An unbound identifier is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.newRuntime(cmd)
			if err != nil {
				return err
			}
			for _, name := range args {
				v, err := r.Eval(lisp.Identifier(name), nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, v.Display())
			}
			return nil
		},
	}
}
