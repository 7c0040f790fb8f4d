package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dkoosis/breathes/internal/config"
	"github.com/dkoosis/breathes/internal/version"
)

// app carries the writers and persistent flag values shared by subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	flags      config.Flags
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "breathes [dir]",
		Short: "Run build, test, lint and audit hooks for every ecosystem in a project",
		Long: `breathes inspects the project root for ecosystem markers (Cargo.toml,
go.mod, package.json, ...) and runs each detected ecosystem's hooks
sequentially, capturing their output under breathes/<Ecosystem>/.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd, args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default .breathes.yaml in the project)")
	pf.StringVar(&a.flags.Format, "format", "", "report format: auto, terminal, plain, json")
	pf.StringVar(&a.flags.Theme, "theme", "", "theme: default, orca, mono")
	pf.StringVar(&a.flags.LogDir, "log-dir", "", "hook log root (default breathes)")
	pf.StringVar(&a.flags.DebugLog, "debug-log", "", "write JSON diagnostics to this rotated file")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colors")
	pf.BoolVar(&a.flags.CI, "ci", false, "CI mode: no colors, no spinner")
	pf.BoolVar(&a.flags.Debug, "debug", false, "print diagnostics to stderr")
	pf.BoolVar(&a.flags.Clear, "clear", false, "clear the terminal before running")

	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		changed := cmd.Flags().Changed
		a.flags.NoColorSet = changed("no-color")
		a.flags.CISet = changed("ci")
		a.flags.DebugSet = changed("debug")
		a.flags.ClearSet = changed("clear")
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "check [dir]",
			Short: "Detect ecosystems and run their hooks (default)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.check,
		},
		&cobra.Command{
			Use:   "detect [dir]",
			Short: "List the ecosystems detected in a project",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.listEcosystems,
		},
		&cobra.Command{
			Use:   "hooks [ecosystem...]",
			Short: "Print the hook catalog",
			RunE:  a.listHooks,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(a.stdout, version.String())
				return err
			},
		},
	)
	return root
}

// projectDir returns the absolute project root named by args, or ".".
func projectDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	return filepath.Abs(dir)
}

// resolve loads and merges configuration for the project at dir.
func (a *app) resolve(dir string) (*config.Resolved, error) {
	file, _, err := config.Load(dir, a.configPath)
	if err != nil {
		return nil, err
	}
	return config.Resolve(a.flags, file)
}
