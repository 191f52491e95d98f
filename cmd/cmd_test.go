package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crowdagger/apocalisp/pkg/lisp"
	"github.com/crowdagger/apocalisp/pkg/lisp/lisptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apocalisp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	stdout, stderr, err := run(t, "demo")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `empty: display="()" sexpr=() list=true tuple=false value="()"`, lines[0])
	assert.Equal(t, `list: display="1, 2)" sexpr=(1 2) list=true tuple=false value="1, 2)"`, lines[1])
	assert.Equal(t, `tuple: display="1, 2, 3" sexpr=(1 2 . 3) list=false tuple=true value="1, 2, 3"`, lines[2])
	assert.Equal(t, `lambda: display="λ x -> +, x, 1)" sexpr=(lambda (x) (+ x 1)) list=false tuple=false value="λ x -> +, x, 1)"`, lines[3])
	assert.Equal(t, `apply: display="λ x -> x" sexpr=(lambda (x) x) list=false tuple=false value="1"`, lines[4])
}

func TestDemo_trace(t *testing.T) {
	_, stderr, err := run(t, "--trace", "demo")
	require.NoError(t, err)
	assert.Equal(t, "apply λ x -> x <- 1\n", stderr)
}

func TestLookup(t *testing.T) {
	stdout, _, err := run(t, "--bind", "x=1", "-b", "y=-2", "lookup", "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\ny = -2\n", stdout)

	_, _, err = run(t, "lookup", "z")
	lisptest.AssertUnbound(t, "z", err)

	_, _, err = run(t, "--bind", "x", "lookup", "x")
	assert.Error(t, err)
	_, _, err = run(t, "--bind", "x=one", "lookup", "x")
	assert.Error(t, err)
	_, _, err = run(t, "lookup")
	assert.Error(t, err)
}

func TestLookup_config(t *testing.T) {
	path := writeConfig(t, "bindings:\n  x: 1\n  y: 2\n")
	stdout, _, err := run(t, "--config", path, "--bind", "y=3", "lookup", "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\ny = 3\n", stdout)

	path = writeConfig(t, "trace: true\nbogus: 1\n")
	_, _, err = run(t, "--config", path, "lookup", "x")
	assert.Error(t, err)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "lookup", "x")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	stdout, _, err := run(t, "apply", "x", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n", stdout)

	// free identifiers resolve in the calling environment
	stdout, _, err = run(t, "-b", "y=7", "apply", "y", "5")
	require.NoError(t, err)
	assert.Equal(t, "7\n", stdout)

	stdout, _, err = run(t, "apply", "--param", "n", "n", "9")
	require.NoError(t, err)
	assert.Equal(t, "9\n", stdout)

	// the parameter shadows a root binding of the same name
	stdout, _, err = run(t, "-b", "x=1", "apply", "x", "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout)

	_, _, err = run(t, "apply", "y", "5")
	lisptest.AssertUnbound(t, "y", err)
	_, _, err = run(t, "apply", "x", "five")
	assert.Error(t, err)
}

func TestApply_traceConfig(t *testing.T) {
	path := writeConfig(t, "trace: true\n")
	_, stderr, err := run(t, "-c", path, "apply", "x", "5")
	require.NoError(t, err)
	assert.Equal(t, "apply λ x -> x <- 5\n", stderr)
}

func TestRootEnv(t *testing.T) {
	env := rootEnv(map[string]int64{"b": 2, "a": 1})
	assert.Equal(t, []string{"b", "a"}, env.Names())
	v, err := env.Lookup("a")
	require.NoError(t, err)
	lisptest.AssertExprEqual(t, lisp.Number(1), v)
	assert.Equal(t, 0, rootEnv(nil).Depth())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.False(t, cfg.Trace)
	assert.Empty(t, cfg.Bindings)

	cfg, err = LoadConfig(writeConfig(t, "trace: true\nbindings:\n  answer: 42\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, map[string]int64{"answer": 42}, cfg.Bindings)

	_, err = LoadConfig("")
	assert.Error(t, err)
	_, err = LoadConfig(writeConfig(t, "bindings:\n  x: one\n"))
	assert.Error(t, err)
}
