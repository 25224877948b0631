package subprocess

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// ProcSpec configures one command within a Launch call. A single command
// is a pipeline of length one.
type ProcSpec struct {
	Path string
	Args []string
	Dir  string

	// Env holds the full "KEY=VALUE" environment for the child. A nil Env
	// inherits the parent's environment unchanged; a non-nil Env replaces
	// it entirely, it is never merged with os.Environ().
	Env []string

	// SetPGID starts the command in a new process group, making
	// Process.SendSignalGroup available.
	SetPGID bool

	// Stdout and Stderr configure this command's own output streams.
	// Leave Stdout at its zero value (RedirectNone) for every command but
	// the last; Launch synthesizes the connecting pipe itself and rejects
	// an explicit override there. Stderr may be set on any command.
	Stdout Redirection
	Stderr Redirection
}

// LaunchOptions configures a Launch call spanning one or more ProcSpecs.
type LaunchOptions struct {
	// Stdin configures the first command's standard input.
	Stdin Redirection

	// StderrAll, if non-nil, overrides every command's Stderr with a
	// single redirection shared across the whole pipeline, rather than
	// each command keeping its own.
	StderrAll *Redirection

	// Detached marks every process in the pipeline as detached on
	// success: Job.Close will not wait on or signal them.
	Detached bool

	// Checked makes Job's terminator methods (Join, Capture,
	// CaptureTimeout) return an *ExitError when the final command's exit
	// status is not successful.
	Checked bool

	// Input supplies data to be written to the first command's stdin.
	// It is only meaningful when consumed through a Communicator
	// (Job.Communicate or Job.Capture); it has no effect on Stdin itself.
	Input InputSource
}

// resolvedCmd is the input/output plumbing for one command, fully
// resolved to concrete os/exec-compatible values by the caller (see
// pipeline.go's resolveRedirection).
type resolvedCmd struct {
	stdin          any // io.Reader, or nil to inherit
	stdout, stderr any // io.Writer, or nil to inherit
}

func buildCmd(ctx context.Context, spec ProcSpec, rc resolvedCmd) *exec.Cmd {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)

	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}

	if spec.Env != nil {
		cmd.Env = spec.Env
	}

	if r, ok := rc.stdin.(io.Reader); ok {
		cmd.Stdin = r
	}

	if w, ok := rc.stdout.(io.Writer); ok {
		cmd.Stdout = w
	}

	if w, ok := rc.stderr.(io.Writer); ok {
		cmd.Stderr = w
	}

	applyProcessGroup(cmd, spec.SetPGID)

	return cmd
}

// openNull opens the OS null device for the given direction, freshly for
// each redirection rather than sharing one handle across commands.
func openNull(write bool) (*os.File, error) {
	flag := os.O_RDONLY
	if write {
		flag = os.O_WRONLY
	}

	return os.OpenFile(os.DevNull, flag, 0)
}
