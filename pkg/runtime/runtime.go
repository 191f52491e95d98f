// Package runtime evaluates expressions and applies lambdas.
//
// Evaluation never dispatches procedure calls on its own: pairs are data and
// evaluate to themselves.  A caller that decides a pair denotes a call applies
// the lambda explicitly with Apply.
//
// Apply extends the environment supplied by the caller, not an environment
// captured when the lambda was constructed.  Free identifiers in a lambda body
// therefore resolve against the bindings active at the call site (dynamic
// scope).
package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/crowdagger/apocalisp/pkg/environ"
	"github.com/crowdagger/apocalisp/pkg/lisp"
)

// Option is a function that configures a new Runtime.
type Option func(*Runtime) error

// WithStderr redirects a runtime's Stderr output stream to w instead of the
// default os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runtime) error {
		if w == nil {
			return fmt.Errorf("nil stderr")
		}
		r.Stderr = w
		return nil
	}
}

// WithTrace enables or disables trace output on the runtime's Stderr.
func WithTrace(on bool) Option {
	return func(r *Runtime) error {
		r.Trace = on
		return nil
	}
}

// WithRoot makes the runtime evaluate in env when a nil environment is
// passed to Eval or Apply.
func WithRoot(env *environ.Environ) Option {
	return func(r *Runtime) error {
		if env == nil {
			return fmt.Errorf("nil root environment")
		}
		r.Root = env
		return nil
	}
}

// Runtime holds the configuration for evaluating expressions.  A Runtime is
// never modified by evaluation and may be used from multiple goroutines once
// configured, provided its Stderr is safe for concurrent writes when Trace is
// enabled.
type Runtime struct {
	Root   *environ.Environ
	Stderr io.Writer
	Trace  bool
}

// New initializes and returns a new Runtime with the provided configuration
// options.  If any error is encountered it will be returned with a nil
// runtime.
func New(options ...Option) (*Runtime, error) {
	r := &Runtime{
		Root:   environ.New(),
		Stderr: os.Stderr,
	}
	for _, fn := range options {
		err := fn(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Runtime) env(env *environ.Environ) *environ.Environ {
	if env == nil {
		return r.Root
	}
	return env
}

func (r *Runtime) tracef(format string, args ...interface{}) {
	if r.Trace {
		fmt.Fprintf(r.Stderr, format, args...)
	}
}

// Eval evaluates v in env.  If env is nil the runtime's Root is used.
func (r *Runtime) Eval(v lisp.Expr, env *environ.Environ) (lisp.Expr, error) {
	if v == nil {
		v = lisp.Empty()
	}
	result, err := v.Eval(r.env(env))
	if err != nil {
		r.tracef("eval error: %v\n", err)
		return nil, err
	}
	return result, nil
}

// Apply binds the parameter of fn to arg in a new frame on top of env and
// evaluates the body of fn in that frame.  The argument is bound as given and
// is not evaluated again.  If env is nil the runtime's Root is used.
func (r *Runtime) Apply(fn *lisp.LambdaVal, arg lisp.Expr, env *environ.Environ) (lisp.Expr, error) {
	if fn == nil {
		return nil, fmt.Errorf("apply: nil lambda")
	}
	if arg == nil {
		arg = lisp.Empty()
	}
	r.tracef("apply %s <- %s\n", fn.Display(), arg.Display())
	frame := r.env(env).Bind(fn.Parameter().Name(), arg)
	return r.Eval(fn.Body(), frame)
}

var defaultRuntime = &Runtime{
	Root:   environ.New(),
	Stderr: io.Discard,
}

// Eval evaluates v in env without tracing.  A nil env is treated as an empty
// root environment.
func Eval(v lisp.Expr, env *environ.Environ) (lisp.Expr, error) {
	return defaultRuntime.Eval(v, env)
}

// Apply applies fn to arg in env without tracing.  A nil env is treated as an
// empty root environment.
func Apply(fn *lisp.LambdaVal, arg lisp.Expr, env *environ.Environ) (lisp.Expr, error) {
	return defaultRuntime.Apply(fn, arg, env)
}
