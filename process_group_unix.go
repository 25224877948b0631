//go:build !windows

package subprocess

import (
	"os/exec"
	"syscall"
)

func applyProcessGroup(cmd *exec.Cmd, setpgid bool) {
	if setpgid {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}
}
