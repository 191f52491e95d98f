// Package environ implements persistent environments.  An Environ is a frame
// holding at most one binding and a reference to its parent frame.  Frames
// are never modified after construction.  Binding a name creates a new child
// frame and leaves the receiver valid and unchanged, so any number of
// extensions of a frame may coexist and frames may be read concurrently
// without synchronization.
package environ

import (
	"github.com/crowdagger/apocalisp/pkg/lisp"
)

// Environ is a lexical environment frame.  A root Environ has no parent and
// no binding.  Every other Environ binds exactly one name and is in the scope
// of its parent's bindings.
type Environ struct {
	parent *Environ
	root   *Environ
	depth  int
	name   string
	value  lisp.Expr
}

var _ lisp.Scope = (*Environ)(nil)

// New returns a new root environment.
func New() *Environ {
	return &Environ{}
}

// Bind returns a new environment that binds name to v and has env as its
// parent.  Bindings for name in env and its ancestors are shadowed in the
// returned environment but remain visible through env.  A nil env is treated
// as an empty root.
func (env *Environ) Bind(name string, v lisp.Expr) *Environ {
	if env == nil {
		env = New()
	}
	if v == nil {
		v = lisp.Empty()
	}
	return &Environ{
		parent: env,
		root:   env.Root(),
		depth:  env.depth + 1,
		name:   name,
		value:  v,
	}
}

// Parent returns the environment env was bound on.  Parent returns nil if env
// is a root.
func (env *Environ) Parent() *Environ {
	return env.parent
}

// Root returns the root environment of env.
func (env *Environ) Root() *Environ {
	if env.root != nil {
		return env.root
	}
	return env
}

// Depth returns the number of frames between env and its root.  Depth is 0
// for a root environment.
func (env *Environ) Depth() int {
	return env.depth
}

// Get returns the value bound to name in the innermost frame that binds it.
func (env *Environ) Get(name string) (lisp.Expr, bool) {
	for ; env != nil && env.parent != nil; env = env.parent {
		if env.name == name {
			return env.value, true
		}
	}
	return nil, false
}

// Lookup implements lisp.Scope.  Lookup returns an *lisp.UnboundError if name
// is not bound in env or any of its ancestors.
func (env *Environ) Lookup(name string) (lisp.Expr, error) {
	v, ok := env.Get(name)
	if !ok {
		return nil, &lisp.UnboundError{Name: name}
	}
	return v, nil
}

// Names returns the names visible in env, innermost first.  Each name appears
// once regardless of how many frames bind it.
func (env *Environ) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for ; env != nil && env.parent != nil; env = env.parent {
		if seen[env.name] {
			continue
		}
		seen[env.name] = true
		names = append(names, env.name)
	}
	return names
}
