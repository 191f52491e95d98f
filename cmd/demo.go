package cmd

import (
	"fmt"
	"io"

	"github.com/crowdagger/apocalisp/pkg/lisp"
	"github.com/crowdagger/apocalisp/pkg/runtime"
	"github.com/spf13/cobra"
)

type demoScenario struct {
	Name string
	Expr lisp.Expr
	// Arg, when non-nil, is applied to Expr, which must be a lambda.
	Arg lisp.Expr
}

func demoScenarios() []demoScenario {
	x := lisp.Identifier("x")
	return []demoScenario{
		{Name: "empty", Expr: lisp.Empty()},
		{Name: "list", Expr: lisp.List(lisp.Number(1), lisp.Number(2))},
		{Name: "tuple", Expr: lisp.Tuple(lisp.Number(1), lisp.Number(2), lisp.Number(3))},
		{Name: "lambda", Expr: lisp.Lambda(x, lisp.List(lisp.Identifier("+"), x, lisp.Number(1)))},
		{Name: "apply", Expr: lisp.Lambda(x, x), Arg: lisp.Number(1)},
	}
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Evaluate and print built-in example expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.newRuntime(cmd)
			if err != nil {
				return err
			}
			for _, s := range demoScenarios() {
				if err := runDemo(cmd.OutOrStdout(), r, s); err != nil {
					return fmt.Errorf("%s: %w", s.Name, err)
				}
			}
			return nil
		},
	}
}

func runDemo(w io.Writer, r *runtime.Runtime, s demoScenario) error {
	var result lisp.Expr
	var err error
	if s.Arg != nil {
		fn, ok := s.Expr.(*lisp.LambdaVal)
		if !ok {
			return fmt.Errorf("cannot apply %v", s.Expr.Kind())
		}
		result, err = r.Apply(fn, s.Arg, nil)
	} else {
		result, err = r.Eval(s.Expr, nil)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: display=%q sexpr=%s list=%t tuple=%t value=%q\n",
		s.Name, s.Expr.Display(), s.Expr, s.Expr.IsList(), s.Expr.IsTuple(), result.Display())
	return err
}
