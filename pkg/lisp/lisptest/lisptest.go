// Package lisptest contains assertions shared by tests of packages that
// produce lisp expressions.
package lisptest

import (
	"fmt"
	"testing"

	"github.com/crowdagger/apocalisp/pkg/lisp"
	"github.com/stretchr/testify/assert"
)

// AssertNumberEqual asserts that v is a number with value expect.
func AssertNumberEqual(t testing.TB, expect int64, v lisp.Expr, msgAndArgs ...interface{}) bool {
	t.Helper()
	x, ok := v.(lisp.NumberVal)
	if !ok {
		return assert.Fail(t, fmt.Sprintf("Not a number: %v", v), msgAndArgs...)
	}
	return assert.Equal(t, expect, x.Value(), msgAndArgs...)
}

// AssertDisplay asserts that the display text of v is expect.
func AssertDisplay(t testing.TB, expect string, v lisp.Expr, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Equal(t, expect, lisp.Display(v), msgAndArgs...)
}

// AssertExprEqual asserts that expect and v are structurally equal.  Failure
// messages show both expressions formatted as s-expressions.
func AssertExprEqual(t testing.TB, expect, v lisp.Expr, msgAndArgs ...interface{}) bool {
	t.Helper()
	if lisp.Equal(expect, v) {
		return true
	}
	return assert.Fail(t, "Expressions not equal: \n"+
		"expected: "+lisp.String(expect)+"\n"+
		"actual  : "+lisp.String(v), msgAndArgs...)
}

// AssertUnbound asserts that err reports an unbound identifier with the given
// name.
func AssertUnbound(t testing.TB, name string, err error, msgAndArgs ...interface{}) bool {
	t.Helper()
	var uerr *lisp.UnboundError
	if !assert.ErrorAs(t, err, &uerr, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, name, uerr.Name, msgAndArgs...)
}
