package lisp

// ConsVal is an ordered pair.  ConsVal values are immutable, so chains of
// pairs cannot form cycles.
type ConsVal struct {
	classify
	car Expr
	cdr Expr
}

// Cons returns a new pair from head and tail.  If tail is a list then Cons
// returns a list as well.  A nil head or tail is treated as the empty list.
//		(cons head tail)
func Cons(head, tail Expr) *ConsVal {
	if head == nil {
		head = Empty()
	}
	if tail == nil {
		tail = Empty()
	}
	return &ConsVal{car: head, cdr: tail}
}

// Car returns the head of v.
func (v *ConsVal) Car() Expr { return v.car }

// Cdr returns the tail of v.
func (v *ConsVal) Cdr() Expr { return v.cdr }

// Kind implements Expr.
func (*ConsVal) Kind() Kind { return KindCons }

// Eval implements Expr.  Pairs are data and evaluate to themselves.
// Recognizing a pair as a procedure call is the responsibility of the caller,
// which applies lambdas explicitly.
func (v *ConsVal) Eval(Scope) (Expr, error) { return v, nil }

// Display implements Expr.
func (v *ConsVal) Display() string { return displayString(v) }

// String implements Expr.
func (v *ConsVal) String() string { return String(v) }

// IsList returns true if v is a true list -- if the cdr of its last cell is
// the empty list.
func (v *ConsVal) IsList() bool {
	return v.last().cdr.IsEmpty()
}

// IsTuple returns true if the cdr of v's last cell is not the empty list.
func (v *ConsVal) IsTuple() bool {
	return !v.IsList()
}

// last returns the final pair in the chain starting at v.
func (v *ConsVal) last() *ConsVal {
	for {
		next, ok := v.cdr.(*ConsVal)
		if !ok {
			return v
		}
		v = next
	}
}

// List returns a proper list containing the elements of v.
func List(v ...Expr) Expr {
	var lis Expr = Empty()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// Tuple returns a chain of pairs whose final cdr is the last element of v.
// Tuple returns the empty list when v is empty and v[0] when v has one
// element.
//		Tuple(1, 2, 3) == Cons(1, Cons(2, 3))
func Tuple(v ...Expr) Expr {
	if len(v) == 0 {
		return Empty()
	}
	tup := v[len(v)-1]
	if tup == nil {
		tup = Empty()
	}
	for i := len(v) - 2; i >= 0; i-- {
		tup = Cons(v[i], tup)
	}
	return tup
}

// Len returns the number of pairs in the list v.  Len returns false if v is
// not a list.
func Len(v Expr) (int, bool) {
	n := 0
	for {
		switch c := v.(type) {
		case EmptyVal:
			return n, true
		case *ConsVal:
			n++
			v = c.cdr
		default:
			return n, false
		}
	}
}

// Slice collects the cars of the chain starting at v and returns them along
// with the final cdr.  The returned tail is the empty list iff v is a list.
// If v is not a pair Slice returns no elements and v itself as the tail.
//		Slice(List(1, 2)) == []{1, 2}, ()
//		Slice(Tuple(1, 2, 3)) == []{1, 2}, 3
func Slice(v Expr) ([]Expr, Expr) {
	var s []Expr
	for {
		c, ok := v.(*ConsVal)
		if !ok {
			return s, v
		}
		s = append(s, c.car)
		v = c.cdr
	}
}
