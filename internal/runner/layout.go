package runner

import (
	"os"
	"path/filepath"

	"github.com/dkoosis/breathes/pkg/ecosystem"
	"github.com/dkoosis/breathes/pkg/hook"
)

// LogLayout maps hooks to their capture files:
//
//	<Root>/<Ecosystem>/stdout/<LogFile>
//	<Root>/<Ecosystem>/stderr/<LogFile>
type LogLayout struct {
	Root string
}

// In resolves a relative root against dir.
func (l LogLayout) In(dir string) LogLayout {
	if filepath.IsAbs(l.Root) || dir == "" {
		return l
	}
	return LogLayout{Root: filepath.Join(dir, l.Root)}
}

// Dir returns the stream directory ("stdout" or "stderr") for e.
func (l LogLayout) Dir(e ecosystem.Ecosystem, stream string) string {
	return filepath.Join(l.Root, e.String(), stream)
}

// StdoutPath is the capture file for h's standard output.
func (l LogLayout) StdoutPath(h hook.Hook) string {
	return filepath.Join(l.Dir(h.Ecosystem, "stdout"), h.LogFile)
}

// StderrPath is the capture file for h's standard error.
func (l LogLayout) StderrPath(h hook.Hook) string {
	return filepath.Join(l.Dir(h.Ecosystem, "stderr"), h.LogFile)
}

// Ensure creates both stream directories for e. Existing directories are fine.
func (l LogLayout) Ensure(e ecosystem.Ecosystem) error {
	for _, stream := range []string{"stdout", "stderr"} {
		dir := l.Dir(e, stream)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &InfrastructureError{Op: "create log dir", Path: dir, Err: err}
		}
	}
	return nil
}
