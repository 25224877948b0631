//go:build !windows

package subprocess

import "syscall"

// signal extracts the terminating signal from the process state, if the
// process did not exit normally.
func (s ExitStatus) signal() (int, bool) {
	if s.state == nil {
		return 0, false
	}

	ws, ok := s.state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}

	return int(ws.Signal()), true
}
