package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/crowdagger/apocalisp/pkg/environ"
	"github.com/crowdagger/apocalisp/pkg/lisp"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a configuration file.
//
//	trace: true
//	bindings:
//	  x: 1
//	  y: 2
type Config struct {
	Trace    bool             `yaml:"trace"`
	Bindings map[string]int64 `yaml:"bindings"`
}

// LoadConfig parses the configuration file at path.  Unknown keys are
// rejected.  An empty file is an empty configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{}
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// parseBindings parses name=int arguments given with --bind.
func parseBindings(args []string) (map[string]int64, error) {
	bindings := make(map[string]int64, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("bind: expected name=int: %q", arg)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", name, err)
		}
		bindings[name] = x
	}
	return bindings, nil
}

// rootEnv binds every name in bindings on a new root environment.  Names are
// bound in sorted order so frame layout does not depend on map iteration.
func rootEnv(bindings map[string]int64) *environ.Environ {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	bs := make([]environ.Binding, 0, len(names))
	for _, name := range names {
		bs = append(bs, environ.Binding{Name: name, Value: lisp.Number(bindings[name])})
	}
	return environ.Extend(environ.New(), bs...)
}
