package lisp

import (
	"io"
	"strings"

	"github.com/crowdagger/apocalisp/pkg/internal/lfmt"
)

// Display returns the display text of v.  Display is equivalent to
// v.Display() but also accepts a nil Expr, rendered as the empty list.
//
// Pairs are rendered as their elements separated by ", " and the empty list
// terminating a chain is rendered as a single closing parenthesis.  No opening
// parenthesis is written.
//		Display(List(1, 2)) == "1, 2)"
//		Display(Tuple(1, 2, 3)) == "1, 2, 3"
func Display(v Expr) string {
	if v == nil {
		return "()"
	}
	return v.Display()
}

func displayString(v Expr) string {
	var b strings.Builder
	writeDisplay(lfmt.NewWriter(&b), v)
	return b.String()
}

func writeDisplay(w *lfmt.Writer, v Expr) {
	switch v := v.(type) {
	case *ConsVal:
		for {
			writeDisplay(w, v.car)
			if v.cdr.IsEmpty() {
				w.WriteString(")")
				return
			}
			w.WriteString(", ")
			next, ok := v.cdr.(*ConsVal)
			if !ok {
				writeDisplay(w, v.cdr)
				return
			}
			v = next
		}
	case *LambdaVal:
		w.WriteString("λ ")
		w.WriteString(v.param.name)
		w.WriteString(" -> ")
		writeDisplay(w, v.body)
	default:
		w.WriteString(v.Display())
	}
}

// Format writes a source-code representation of v to w and returns the number
// of bytes written.  Lists are written (1 2 3), tuples (1 2 . 3) and lambdas
// (lambda (x) body).
func Format(w io.Writer, v Expr) (int, error) {
	cw := lfmt.NewWriter(w)
	start := cw.N()
	if v == nil {
		v = Empty()
	}
	format(cw, v)
	return cw.N() - start, cw.Err()
}

// String returns the result of Format as a string.
func String(v Expr) string {
	var b strings.Builder
	Format(&b, v)
	return b.String()
}

func format(w *lfmt.Writer, v Expr) {
	switch v := v.(type) {
	case *ConsVal:
		w.WriteString("(")
		for {
			format(w, v.car)
			if v.cdr.IsEmpty() {
				break
			}
			next, ok := v.cdr.(*ConsVal)
			if !ok {
				w.WriteString(" . ")
				format(w, v.cdr)
				break
			}
			w.WriteString(" ")
			v = next
		}
		w.WriteString(")")
	case *LambdaVal:
		w.WriteString("(lambda (")
		w.WriteString(v.param.name)
		w.WriteString(") ")
		format(w, v.body)
		w.WriteString(")")
	default:
		w.WriteString(v.String())
	}
}
