//go:build windows

package subprocess

import "os/exec"

// applyProcessGroup is a no-op on Windows: SetPGID has no equivalent, and
// SendSignalGroup reports ErrNotSupported there regardless.
func applyProcessGroup(cmd *exec.Cmd, setpgid bool) {}
