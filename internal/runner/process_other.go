//go:build !unix

package runner

import "os/exec"

// setProcessGroup is a no-op without process groups.
func setProcessGroup(*exec.Cmd) {}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func exitCode(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}
