package cmd

import (
	"fmt"
	"strconv"

	"github.com/crowdagger/apocalisp/pkg/lisp"
	"github.com/spf13/cobra"
)

func newApplyCmd(opts *options) *cobra.Command {
	var param string
	cmd := &cobra.Command{
		Use:   "apply BODY ARG",
		Short: "Apply a lambda to an integer argument",
		Long: `Apply the lambda (lambda (PARAM) BODY) to the integer ARG.  BODY is an
identifier.  It resolves to ARG when it names the parameter and otherwise
resolves in the root environment, which acts as the calling environment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("argument: %w", err)
			}
			r, err := opts.newRuntime(cmd)
			if err != nil {
				return err
			}
			fn := lisp.Lambda(lisp.Identifier(param), lisp.Identifier(args[0]))
			v, err := r.Apply(fn, lisp.Number(x), nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Display())
			return nil
		},
	}
	cmd.Flags().StringVarP(&param, "param", "p", "x", "Name of the lambda parameter")
	return cmd
}
