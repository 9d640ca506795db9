// Package spawn launches fire-and-forget background processes. The
// child shares no memory with the parent and is observable only through
// what it writes to disk.
package spawn

import (
	"os"
	"os/exec"
)

// Detached starts the current binary with args as a detached process and
// does not wait for it.
func Detached(args ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	cmd := exec.Command(exe, args...)
	cmd.SysProcAttr = sysProcAttr()
	if err := cmd.Start(); err != nil {
		return err
	}
	// Release instead of Wait so the child outlives this process
	return cmd.Process.Release()
}
