// Package lisp defines the expression model shared by every part of the
// interpreter.  Expressions are immutable once constructed.  Operations on
// them return new nodes or existing shared nodes and never modify their
// inputs, so expression trees may be shared freely between goroutines.
package lisp

import (
	"strconv"
)

// Kind identifies which of the closed set of expression kinds a value is.
type Kind uint8

const (
	// KindEmpty is the empty list, written ().
	KindEmpty Kind = iota
	// KindNumber is a 64-bit integer literal.
	KindNumber
	// KindIdentifier is a name resolved through an environment.
	KindIdentifier
	// KindCons is a pair.  Chains of pairs terminated by the empty list are
	// lists.  Chains terminated by anything else are tuples.
	KindCons
	// KindLambda is a single-parameter closure.
	KindLambda
)

var kindStrings = []string{
	KindEmpty:      "empty",
	KindNumber:     "number",
	KindIdentifier: "identifier",
	KindCons:       "cons",
	KindLambda:     "lambda",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindStrings[k]
}

// Scope resolves identifiers to values.  Values held by a Scope have already
// been evaluated so resolution never evaluates anything itself.
type Scope interface {
	// Lookup returns the value bound to name.  Lookup returns an
	// *UnboundError if no binding exists.
	Lookup(name string) (Expr, error)
}

// Expr is an expression.  The set of implementations is closed: EmptyVal,
// NumberVal, IdentVal, *ConsVal and *LambdaVal.
type Expr interface {
	// Kind returns the expression's kind.
	Kind() Kind
	// Eval produces the value of the expression in scope.  Eval does not
	// modify the expression or scope.
	Eval(scope Scope) (Expr, error)
	// Display returns a human readable rendering of the expression.
	Display() string
	// IsEmpty returns true only for the empty list.
	IsEmpty() bool
	// IsList returns true for the empty list and for chains of pairs
	// terminated by the empty list.
	IsList() bool
	// IsTuple returns true for chains of pairs that are not lists.
	IsTuple() bool
	// String returns the expression formatted as an s-expression.
	String() string

	expr()
}

// classify provides the default answer for classification predicates.
type classify struct{}

func (classify) IsEmpty() bool { return false }
func (classify) IsList() bool  { return false }
func (classify) IsTuple() bool { return false }
func (classify) expr()         {}

var (
	_ Expr = EmptyVal{}
	_ Expr = NumberVal{}
	_ Expr = IdentVal{}
	_ Expr = (*ConsVal)(nil)
	_ Expr = (*LambdaVal)(nil)
)

// EmptyVal is the empty list.  The zero EmptyVal is ready to use.
type EmptyVal struct {
	classify
}

// Empty returns the empty list.
func Empty() EmptyVal {
	return EmptyVal{}
}

// Kind implements Expr.
func (EmptyVal) Kind() Kind { return KindEmpty }

// Eval implements Expr.  The empty list evaluates to itself.
func (v EmptyVal) Eval(Scope) (Expr, error) { return v, nil }

// Display implements Expr.
func (EmptyVal) Display() string { return "()" }

// String implements Expr.
func (EmptyVal) String() string { return "()" }

// IsEmpty implements Expr.
func (EmptyVal) IsEmpty() bool { return true }

// IsList implements Expr.
func (EmptyVal) IsList() bool { return true }

// NumberVal is an integer literal.
type NumberVal struct {
	classify
	value int64
}

// Number returns a NumberVal holding x.
func Number(x int64) NumberVal {
	return NumberVal{value: x}
}

// Value returns the integer held by v.
func (v NumberVal) Value() int64 { return v.value }

// Kind implements Expr.
func (NumberVal) Kind() Kind { return KindNumber }

// Eval implements Expr.  Numbers evaluate to an equal number.
func (v NumberVal) Eval(Scope) (Expr, error) { return Number(v.value), nil }

// Display implements Expr.
func (v NumberVal) Display() string { return strconv.FormatInt(v.value, 10) }

// String implements Expr.
func (v NumberVal) String() string { return v.Display() }

// IdentVal is a reference to a value bound in a Scope.
type IdentVal struct {
	classify
	name string
}

// Identifier returns an IdentVal referencing name.
func Identifier(name string) IdentVal {
	return IdentVal{name: name}
}

// Name returns the name referenced by v.
func (v IdentVal) Name() string { return v.name }

// Kind implements Expr.
func (IdentVal) Kind() Kind { return KindIdentifier }

// Eval implements Expr.  Eval returns the value bound to v's name in scope.
func (v IdentVal) Eval(scope Scope) (Expr, error) {
	if scope == nil {
		return nil, &UnboundError{Name: v.name}
	}
	return scope.Lookup(v.name)
}

// Display implements Expr.
func (v IdentVal) Display() string { return v.name }

// String implements Expr.
func (v IdentVal) String() string { return v.name }

// LambdaVal is a closure of one parameter.
type LambdaVal struct {
	classify
	param IdentVal
	body  Expr
}

// Lambda returns a closure binding param in body.  A nil body is treated as
// the empty list.
func Lambda(param IdentVal, body Expr) *LambdaVal {
	if body == nil {
		body = Empty()
	}
	return &LambdaVal{param: param, body: body}
}

// Parameter returns the identifier bound when v is applied.
func (v *LambdaVal) Parameter() IdentVal { return v.param }

// Body returns the expression evaluated when v is applied.
func (v *LambdaVal) Body() Expr { return v.body }

// Kind implements Expr.
func (*LambdaVal) Kind() Kind { return KindLambda }

// Eval implements Expr.  A lambda evaluates to itself.
func (v *LambdaVal) Eval(Scope) (Expr, error) { return v, nil }

// Display implements Expr.
func (v *LambdaVal) Display() string { return displayString(v) }

// String implements Expr.
func (v *LambdaVal) String() string { return String(v) }

// Equal returns true if a and b are structurally identical.  Lambdas are equal
// when their parameters and bodies are equal.
func Equal(a, b Expr) bool {
	for {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		ca, ok := a.(*ConsVal)
		if !ok {
			return equalAtom(a, b)
		}
		cb, ok := b.(*ConsVal)
		if !ok {
			return false
		}
		if ca == cb {
			return true
		}
		if !Equal(ca.car, cb.car) {
			return false
		}
		a, b = ca.cdr, cb.cdr
	}
}

func equalAtom(a, b Expr) bool {
	switch a := a.(type) {
	case EmptyVal:
		return b.IsEmpty()
	case NumberVal:
		bn, ok := b.(NumberVal)
		return ok && a.value == bn.value
	case IdentVal:
		bid, ok := b.(IdentVal)
		return ok && a.name == bid.name
	case *LambdaVal:
		bl, ok := b.(*LambdaVal)
		if !ok {
			return false
		}
		return a == bl || (a.param.name == bl.param.name && Equal(a.body, bl.body))
	default:
		return false
	}
}
