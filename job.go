package subprocess

import (
	"context"
	"os"
	"sync"
	"time"
)

// Job owns the parent-side pipe endpoints and the ordered processes
// produced by one Launch call. A single command launched with Launch is a
// Job with one Process.
//
// Stdin must be closed before the last Process is waited on if the child
// is still reading from it; Close, Join, and Capture all do this
// automatically. Callers writing to Stdin directly are responsible for
// closing it themselves once they are done.
type Job struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File

	Processes []*Process

	checked   bool
	detached  bool
	stdinData InputSource

	mu     sync.Mutex
	closed bool
}

// Wait blocks until every process in the pipeline has terminated and
// returns the last command's exit status. A Job with no processes (an
// empty Launch) reports a vacuous success immediately.
func (j *Job) Wait() ExitStatus {
	if len(j.Processes) == 0 {
		return vacuousSuccess()
	}

	var last ExitStatus

	for _, p := range j.Processes {
		last = p.Wait()
	}

	return last
}

// WaitTimeout blocks until every process terminates or d elapses. ok is
// false if d elapsed before all processes finished, and status is then the
// zero ExitStatus. A Job with no processes reports a vacuous success
// immediately.
func (j *Job) WaitTimeout(d time.Duration) (status ExitStatus, ok bool) {
	if len(j.Processes) == 0 {
		return vacuousSuccess(), true
	}

	deadline := time.Now().Add(d)

	for _, p := range j.Processes {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}

		s, done := p.WaitTimeout(remaining)
		if !done {
			return ExitStatus{}, false
		}

		status = s
	}

	return status, true
}

// Terminate sends SIGTERM (or its platform equivalent) to every process
// in the pipeline that is not detached.
func (j *Job) Terminate() error {
	var firstErr error

	for _, p := range j.Processes {
		if p.IsDetached() {
			continue
		}

		if err := p.Terminate(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Kill sends SIGKILL (or its platform equivalent) to every process in the
// pipeline that is not detached.
func (j *Job) Kill() error {
	var firstErr error

	for _, p := range j.Processes {
		if p.IsDetached() {
			continue
		}

		if err := p.Kill(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Detach marks the Job and every process it owns as detached: Close will
// no longer wait on or signal them.
func (j *Job) Detach() {
	j.mu.Lock()
	j.detached = true
	j.mu.Unlock()

	for _, p := range j.Processes {
		p.Detach()
	}
}

// Join closes Stdin if still open, waits for every process to terminate,
// and returns the last command's exit status. If the Job was configured
// with Checked and the final status is not successful, it returns an
// *ExitError instead of a nil error. It returns ErrJobClosed if Close or
// CloseTimeout already ran.
func (j *Job) Join() (ExitStatus, error) {
	if j.isClosed() {
		return ExitStatus{}, ErrJobClosed
	}

	j.closeStdin()

	status := j.Wait()

	return status, j.checkedError(status)
}

func (j *Job) isClosed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.closed
}

func (j *Job) checkedError(status ExitStatus) error {
	if !j.checked || status.Success() {
		return nil
	}

	path := ""
	if len(j.Processes) > 0 {
		path = j.Processes[len(j.Processes)-1].path
	}

	return &ExitError{Path: path, Status: status}
}

func (j *Job) closeStdin() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.Stdin != nil {
		_ = j.Stdin.Close()
		j.Stdin = nil
	}
}

// Communicate builds a Communicator bound to this Job's outward pipe ends
// and the InputSource supplied to Launch. The caller drives it with Run.
func (j *Job) Communicate() *Communicator {
	return &Communicator{
		stdin:  j.Stdin,
		stdout: j.Stdout,
		stderr: j.Stderr,
		input:  j.stdinData,
	}
}

// Capture runs this Job's Communicator to completion, then waits for the
// pipeline and returns the captured output together with the final exit
// status.
func (j *Job) Capture() (*CaptureResult, error) {
	return j.capture(context.Background())
}

// CaptureTimeout is Capture with a deadline on the Communicator phase. If
// the deadline elapses first, it returns a *TimeoutError carrying whatever
// was captured so far; the pipeline is left running.
func (j *Job) CaptureTimeout(d time.Duration) (*CaptureResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	return j.capture(ctx)
}

func (j *Job) capture(ctx context.Context) (*CaptureResult, error) {
	comm := j.Communicate()

	result, err := comm.Run(ctx)
	j.Stdin, j.Stdout, j.Stderr = nil, nil, nil

	if err != nil {
		return result, err
	}

	status := j.Wait()
	result.Status = status

	return result, j.checkedError(status)
}

// Close releases the Job's resources. If the Job is not detached, it
// closes Stdin and waits for every process to terminate; it never signals
// or kills a process itself. Use CloseTimeout for a bounded wait that
// escalates to Terminate and Kill. Close is safe to call more than once.
func (j *Job) Close() error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()

		return nil
	}

	j.closed = true
	detached := j.detached
	j.mu.Unlock()

	j.closeStdin()

	if j.Stdout != nil {
		_ = j.Stdout.Close()
	}

	if j.Stderr != nil {
		_ = j.Stderr.Close()
	}

	if detached {
		return nil
	}

	j.Wait()

	return nil
}

// CloseTimeout releases the Job's resources, giving the pipeline grace to
// exit on its own before escalating to Terminate and then Kill. It never
// blocks longer than roughly 2*grace.
func (j *Job) CloseTimeout(grace time.Duration) error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()

		return nil
	}

	j.closed = true
	detached := j.detached
	j.mu.Unlock()

	j.closeStdin()

	if j.Stdout != nil {
		_ = j.Stdout.Close()
	}

	if j.Stderr != nil {
		_ = j.Stderr.Close()
	}

	if detached {
		return nil
	}

	if _, ok := j.WaitTimeout(grace); ok {
		return nil
	}

	_ = j.Terminate()

	if _, ok := j.WaitTimeout(grace); ok {
		return nil
	}

	_ = j.Kill()
	j.Wait()

	return nil
}
