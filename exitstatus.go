package subprocess

import "os"

// ExitStatus reports how a process terminated.
type ExitStatus struct {
	state *os.ProcessState

	// success is only meaningful when state is nil: it lets a Job with no
	// processes at all (see vacuousSuccess) report a successful status
	// without a *os.ProcessState to back it.
	success bool
}

// vacuousSuccess is the successful exit status reported by a Job that
// launched no processes at all.
func vacuousSuccess() ExitStatus {
	return ExitStatus{success: true}
}

// Success reports whether the process exited with status 0 and was not
// killed by a signal.
func (s ExitStatus) Success() bool {
	if s.state != nil {
		return s.state.Success()
	}

	return s.success
}

// Code returns the process's exit code and true, or (0, false) if the
// process was terminated by a signal instead of exiting normally.
func (s ExitStatus) Code() (int, bool) {
	if s.state == nil {
		return 0, false
	}

	if _, killed := s.signal(); killed {
		return 0, false
	}

	return s.state.ExitCode(), true
}

// Signal returns the signal number that terminated the process and true,
// or (0, false) if the process exited normally instead.
func (s ExitStatus) Signal() (int, bool) {
	return s.signal()
}

// IsKilledBy reports whether the process was terminated by the given
// signal number.
func (s ExitStatus) IsKilledBy(signum int) bool {
	sig, killed := s.signal()

	return killed && sig == signum
}

// String returns a short human-readable description, matching the form
// os/exec's own ExitError uses.
func (s ExitStatus) String() string {
	if s.state == nil {
		if s.success {
			return "exit status 0 (no processes launched)"
		}

		return "unknown exit status"
	}

	return s.state.String()
}
