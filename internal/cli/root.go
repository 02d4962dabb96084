// Package cli implements the tinker command-line interface: one
// demonstration subcommand per entity plus config and version commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/tinker/internal/paths"
	"github.com/mesh-intelligence/tinker/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errSystem marks failures caused by the environment rather than the user.
var errSystem = errors.New("system error")

// options holds global flag values accessible to all subcommands.
type options struct {
	configDir string
	output    string
	noColor   bool
	verbose   bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	opts      options
	configDir string
	cfg       types.Config
	log       *zap.SugaredLogger
	out       *printer
}

// NewRootCmd creates the top-level "tinker" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "tinker",
		Short: "Demonstrations of five small stateful entities",
		Long: "tinker drives a bank account, a library book, a car, a coffee maker\n" +
			"and a smartphone through short scripted scenarios.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.opts.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVarP(&a.opts.output, "output", "o", outputText, "output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "log every step at debug level")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newAccountCmd(a))
	root.AddCommand(newBookCmd(a))
	root.AddCommand(newCarCmd(a))
	root.AddCommand(newCoffeeCmd(a))
	root.AddCommand(newPhoneCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errSystem) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves the config directory, loads the config, and builds the
// logger and printer for the subcommand about to run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// version needs no configuration.
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.opts.configDir)
	if err != nil {
		return fmt.Errorf("%w: resolve config dir: %w", errSystem, err)
	}
	a.configDir = dir

	cfg, used, err := loadConfig(dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.opts.verbose {
		level = types.LogLevelDebug
	}
	a.log = newLogger(cmd.ErrOrStderr(), level)
	if used != "" {
		a.log.Debugw("config loaded", "file", used)
	} else {
		a.log.Debugw("no config file, using defaults", "dir", dir)
	}

	a.out, err = newPrinter(cmd.OutOrStdout(), a.opts.output, !a.opts.noColor)
	return err
}
