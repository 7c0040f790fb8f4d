package report

import (
	"encoding/json"
	"io"

	"github.com/dkoosis/breathes/pkg/ecosystem"
)

// JSON writes the report as a single indented document for automation.
type JSON struct{}

type jsonReport struct {
	Root       string          `json:"root"`
	Passed     bool            `json:"passed"`
	ElapsedMS  int64           `json:"elapsed_ms"`
	Ecosystems []jsonEcosystem `json:"ecosystems"`
}

type jsonEcosystem struct {
	Ecosystem ecosystem.Ecosystem `json:"ecosystem"`
	Passed    bool                `json:"passed"`
	ElapsedMS int64               `json:"elapsed_ms"`
	Hooks     []jsonHook          `json:"hooks"`
}

type jsonHook struct {
	Ecosystem   ecosystem.Ecosystem `json:"ecosystem"`
	Description string              `json:"description"`
	Command     string              `json:"command"`
	Passed      bool                `json:"passed"`
	ExitCode    int                 `json:"exit_code"`
	ElapsedMS   int64               `json:"elapsed_ms"`
	Stdout      string              `json:"stdout_log"`
	Stderr      string              `json:"stderr_log"`
	Error       string              `json:"error,omitempty"`
}

func (JSON) Render(w io.Writer, rep *RunReport) error {
	out := jsonReport{
		Root:       rep.Root,
		Passed:     rep.Passed(),
		ElapsedMS:  rep.Elapsed.Milliseconds(),
		Ecosystems: make([]jsonEcosystem, 0, len(rep.Results)),
	}
	for _, res := range rep.Results {
		eco := jsonEcosystem{
			Ecosystem: res.Ecosystem,
			Passed:    res.Passed,
			ElapsedMS: res.Elapsed.Milliseconds(),
			Hooks:     make([]jsonHook, 0, len(res.Hooks)),
		}
		for _, h := range res.Hooks {
			jh := jsonHook{
				Ecosystem:   h.Hook.Ecosystem,
				Description: h.Hook.Description,
				Command:     h.Hook.Command,
				Passed:      h.Passed,
				ExitCode:    h.ExitCode,
				ElapsedMS:   h.Elapsed.Milliseconds(),
				Stdout:      h.Stdout,
				Stderr:      h.Stderr,
			}
			if h.Err != nil {
				jh.Error = h.Err.Error()
			}
			eco.Hooks = append(eco.Hooks, jh)
		}
		out.Ecosystems = append(out.Ecosystems, eco)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
