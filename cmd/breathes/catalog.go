package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dkoosis/breathes/internal/detect"
	"github.com/dkoosis/breathes/pkg/ecosystem"
	"github.com/dkoosis/breathes/pkg/hook"
)

func (a *app) listEcosystems(_ *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}
	cfg, err := a.resolve(dir)
	if err != nil {
		return err
	}

	found, err := detect.Detect(dir)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		if found == nil {
			found = []ecosystem.Ecosystem{}
		}
		return writeJSON(a, found)
	}
	if len(found) == 0 {
		fmt.Fprintln(a.stderr, "No language detected")
		return nil
	}
	for _, e := range found {
		marker, _ := ecosystem.MarkerFor(e)
		fmt.Fprintf(a.stdout, "%-12s %s\n", e, marker)
	}
	return nil
}

func (a *app) listHooks(_ *cobra.Command, args []string) error {
	cfg, err := a.resolve(".")
	if err != nil {
		return err
	}

	var selected []ecosystem.Ecosystem
	for _, name := range args {
		e := ecosystem.Parse(name)
		if e == ecosystem.Unknown {
			return fmt.Errorf("unknown ecosystem %q", name)
		}
		selected = append(selected, e)
	}
	if len(selected) == 0 {
		for _, e := range ecosystem.All() {
			if len(hook.For(e)) > 0 {
				selected = append(selected, e)
			}
		}
	}

	if cfg.Format == "json" {
		out := make(map[string][]hook.Hook, len(selected))
		for _, e := range selected {
			out[e.String()] = hook.For(e)
		}
		return writeJSON(a, out)
	}

	th := cfg.ThemeValue()
	for i, e := range selected {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		marker, _ := ecosystem.MarkerFor(e)
		fmt.Fprintf(a.stdout, "%s %s\n", th.Bold.Render(e.String()), th.Muted.Render("("+marker+")"))
		hooks := hook.For(e)
		if len(hooks) == 0 {
			fmt.Fprintln(a.stdout, th.Muted.Render("  no hooks"))
			continue
		}
		for n, h := range hooks {
			logPath := filepath.Join(cfg.LogDir, h.Ecosystem.String(), "{stdout,stderr}", h.LogFile)
			fmt.Fprintf(a.stdout, "  %d. %s\n", n+1, h.Description)
			fmt.Fprintf(a.stdout, "     $ %s\n", h.Command)
			fmt.Fprintf(a.stdout, "     %s\n", th.Muted.Render(logPath))
		}
	}
	return nil
}

func writeJSON(a *app, v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
