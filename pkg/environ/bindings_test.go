package environ

import (
	"testing"

	"github.com/crowdagger/apocalisp/pkg/lisp"
	"github.com/crowdagger/apocalisp/pkg/lisp/lisptest"
	"github.com/stretchr/testify/assert"
)

func TestExtend(t *testing.T) {
	root := New()
	assert.Same(t, root, Extend(root))
	env := Extend(root,
		Binding{"a", lisp.Number(1)},
		Binding{"b", lisp.Number(2)},
		Binding{"a", lisp.Number(3)},
	)
	assert.Equal(t, 3, env.Depth())
	v, ok := env.Get("a")
	if assert.True(t, ok) {
		lisptest.AssertNumberEqual(t, 3, v)
	}
	v, ok = env.Get("b")
	if assert.True(t, ok) {
		lisptest.AssertNumberEqual(t, 2, v)
	}
	assert.Equal(t, 1, Extend(nil, Binding{"a", lisp.Number(1)}).Depth())
}

func TestZipBindings(t *testing.T) {
	vars := lisp.List(
		lisp.Identifier("a"),
		lisp.Identifier("b"),
		lisp.Identifier("c"),
	)
	_, err := ZipBindings(vars, lisp.Empty())
	assert.Error(t, err)
	_, err = ZipBindings(lisp.Empty(), lisp.List(
		lisp.Number(1),
	))
	assert.Error(t, err)
	_, err = ZipBindings(vars, lisp.List(
		lisp.Number(1),
		lisp.Number(2),
	))
	assert.Error(t, err)
	_, err = ZipBindings(vars, lisp.List(
		lisp.Number(1),
		lisp.Number(2),
		lisp.Number(3),
		lisp.Number(4),
	))
	assert.Error(t, err)
	_, err = ZipBindings(lisp.Tuple(lisp.Identifier("a"), lisp.Identifier("b")), lisp.List(
		lisp.Number(1),
	))
	assert.Error(t, err)
	_, err = ZipBindings(vars, lisp.Tuple(lisp.Number(1), lisp.Number(2), lisp.Number(3)))
	assert.Error(t, err)
	_, err = ZipBindings(lisp.List(lisp.Number(1)), lisp.List(lisp.Number(1)))
	assert.EqualError(t, err, "variable is not an identifier: number")

	bindings, err := ZipBindings(vars, lisp.List(
		lisp.Number(1),
		lisp.Number(2),
		lisp.Number(3),
	))
	if assert.NoError(t, err) && assert.Len(t, bindings, 3) {
		assert.Equal(t, "a", bindings[0].Name)
		lisptest.AssertNumberEqual(t, 1, bindings[0].Value)
		assert.Equal(t, "c", bindings[2].Name)
		lisptest.AssertNumberEqual(t, 3, bindings[2].Value)
	}
}

func TestExtendZip(t *testing.T) {
	root := New().Bind("d", lisp.Number(4))
	env, err := ExtendZip(root,
		lisp.List(lisp.Identifier("a"), lisp.Identifier("b")),
		lisp.List(lisp.Number(1), lisp.List(lisp.Number(2), lisp.Number(3))),
	)
	if !assert.NoError(t, err) {
		return
	}
	v, err := env.Lookup("a")
	if assert.NoError(t, err) {
		lisptest.AssertNumberEqual(t, 1, v)
	}
	v, err = env.Lookup("b")
	if assert.NoError(t, err) {
		lisptest.AssertDisplay(t, "2, 3)", v)
	}
	v, err = env.Lookup("d")
	if assert.NoError(t, err) {
		lisptest.AssertNumberEqual(t, 4, v)
	}
	_, err = ExtendZip(root, lisp.List(lisp.Identifier("a")), lisp.Empty())
	assert.Error(t, err)
}
