package environ

import (
	"fmt"

	"github.com/crowdagger/apocalisp/pkg/lisp"
)

// Binding associates a name with an evaluated value.
type Binding struct {
	Name  string
	Value lisp.Expr
}

// Extend binds each element of bindings in order, starting from parent, and
// returns the innermost frame.  When a name occurs more than once the last
// occurrence shadows the others.  Extend returns parent if bindings is empty.
func Extend(parent *Environ, bindings ...Binding) *Environ {
	env := parent
	if env == nil {
		env = New()
	}
	for _, b := range bindings {
		env = env.Bind(b.Name, b.Value)
	}
	return env
}

// ZipBindings takes a list of identifiers with a list of values and returns
// the corresponding bindings.  If vars and vals are not lists of equal length
// ZipBindings returns an error.
func ZipBindings(vars, vals lisp.Expr) ([]Binding, error) {
	n, ok := lisp.Len(vars)
	if !ok {
		return nil, fmt.Errorf("variable list: not a list: %v", vars)
	}
	m, ok := lisp.Len(vals)
	if !ok {
		return nil, fmt.Errorf("value list: not a list: %v", vals)
	}
	if n != m {
		return nil, fmt.Errorf("variable and value lists have unequal lengths")
	}
	names, _ := lisp.Slice(vars)
	values, _ := lisp.Slice(vals)
	bindings := make([]Binding, 0, n)
	for i := range names {
		id, ok := names[i].(lisp.IdentVal)
		if !ok {
			return nil, fmt.Errorf("variable is not an identifier: %v", names[i].Kind())
		}
		bindings = append(bindings, Binding{id.Name(), values[i]})
	}
	return bindings, nil
}

// ExtendZip returns a new environment populated with bindings created by
// ZipBindings.
func ExtendZip(parent *Environ, vars, vals lisp.Expr) (*Environ, error) {
	bindings, err := ZipBindings(vars, vals)
	if err != nil {
		return nil, err
	}
	return Extend(parent, bindings...), nil
}
