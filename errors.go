package subprocess

import (
	"errors"
	"fmt"
)

// ErrNotProcessGroup is returned by Process.SendSignalGroup when the
// process was not started with a process group of its own.
var ErrNotProcessGroup = errors.New("process has no process group")

// ErrNotSupported is returned by platform-specific Process methods that
// have no equivalent on the current OS.
var ErrNotSupported = errors.New("operation not supported on this platform")

// ErrJobClosed indicates an operation was attempted on a Job after Close
// or CloseTimeout already ran.
var ErrJobClosed = errors.New("job is closed")

// InvalidInputError reports a configuration problem caught during
// validation, before any process is spawned.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid launch configuration: " + e.Reason
}

// ExitError reports that a process completed but Job.Checked was set and
// the final status was not successful.
type ExitError struct {
	Path   string
	Status ExitStatus
}

func (e *ExitError) Error() string {
	if code, ok := e.Status.Code(); ok {
		return fmt.Sprintf("%s: exit status %d", e.Path, code)
	}

	if sig, ok := e.Status.Signal(); ok {
		return fmt.Sprintf("%s: killed by signal %d", e.Path, sig)
	}

	return fmt.Sprintf("%s: unsuccessful exit", e.Path)
}

// TimeoutError reports that a Communicator's deadline elapsed before every
// stream finished. Partial is whatever the accumulators collected before
// the deadline fired.
type TimeoutError struct {
	Partial *CaptureResult
}

func (e *TimeoutError) Error() string {
	return "communicate: deadline exceeded before all streams finished"
}

// CommunicateError reports that writing the InputSource to a child's
// stdin failed, aborting the Communicator session. The accumulators
// returned alongside it hold whatever stdout/stderr had collected before
// the abort.
type CommunicateError struct {
	Err error
}

func (e *CommunicateError) Error() string {
	return fmt.Sprintf("communicate: stdin write failed: %v", e.Err)
}

func (e *CommunicateError) Unwrap() error {
	return e.Err
}
