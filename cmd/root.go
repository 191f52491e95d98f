// Package cmd implements the apocalisp command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/crowdagger/apocalisp/pkg/runtime"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by all subcommands.
type options struct {
	configPath string
	bind       []string
	trace      bool
}

// newRuntime loads configuration and returns a runtime whose root
// environment holds the configured bindings.  Bindings given with --bind
// override bindings from the configuration file.
func (o *options) newRuntime(cmd *cobra.Command) (*runtime.Runtime, error) {
	cfg := &Config{}
	if o.configPath != "" {
		var err error
		cfg, err = LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
	}
	flagBindings, err := parseBindings(o.bind)
	if err != nil {
		return nil, err
	}
	bindings := make(map[string]int64, len(cfg.Bindings)+len(flagBindings))
	for name, x := range cfg.Bindings {
		bindings[name] = x
	}
	for name, x := range flagBindings {
		bindings[name] = x
	}
	return runtime.New(
		runtime.WithRoot(rootEnv(bindings)),
		runtime.WithStderr(cmd.ErrOrStderr()),
		runtime.WithTrace(cfg.Trace || o.trace),
	)
}

// NewRootCmd returns the apocalisp command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "apocalisp",
		Short: "Evaluate lisp expression trees",
		Long: `Evaluate lisp expression trees built from the core expression kinds.

Expressions are constructed programmatically; apocalisp does not read lisp
source text.  Integer bindings for the root environment may be supplied with
--bind or a YAML configuration file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"YAML configuration file")
	rootCmd.PersistentFlags().StringArrayVarP(&opts.bind, "bind", "b", nil,
		"Bind name=int in the root environment (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", false,
		"Trace applications and evaluation errors to stderr")

	rootCmd.AddCommand(newDemoCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))
	rootCmd.AddCommand(newApplyCmd(opts))
	return rootCmd
}

// Execute runs the root command and exits the process with a non-zero status
// on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
