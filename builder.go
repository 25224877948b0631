package subprocess

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Command is a fluent builder for a single ProcSpec. It is the thin,
// out-of-scope collaborator that binds Launch's input contract; none of
// its methods do anything Launch itself cannot already be asked to do
// directly with a ProcSpec literal.
type Command struct {
	spec ProcSpec
}

// Cmd starts a new Command for the given binary and arguments.
func Cmd(path string, args ...string) *Command {
	return &Command{spec: ProcSpec{Path: path, Args: args}}
}

// Arg appends one argument.
func (c *Command) Arg(arg string) *Command {
	c.spec.Args = append(c.spec.Args, arg)
	return c
}

// Args appends multiple arguments.
func (c *Command) Args(args ...string) *Command {
	c.spec.Args = append(c.spec.Args, args...)
	return c
}

// Env adds an environment variable in "KEY=VALUE" form. The first call on
// a Command switches it from inheriting the parent's environment to
// carrying an explicit, replacing one.
func (c *Command) Env(key, value string) *Command {
	c.spec.Env = append(c.spec.Env, key+"="+value)
	return c
}

// Dir sets the working directory.
func (c *Command) Dir(dir string) *Command {
	c.spec.Dir = dir
	return c
}

// SetPGID starts this command in its own process group.
func (c *Command) SetPGID() *Command {
	c.spec.SetPGID = true
	return c
}

// Stdout sets this command's standard output redirection.
func (c *Command) Stdout(r Redirection) *Command {
	c.spec.Stdout = r
	return c
}

// Stderr sets this command's standard error redirection.
func (c *Command) Stderr(r Redirection) *Command {
	c.spec.Stderr = r
	return c
}

// Build returns the constructed ProcSpec.
func (c *Command) Build() ProcSpec {
	return c.spec
}

// Pipeline is a fluent builder for a Launch call spanning one or more
// commands.
type Pipeline struct {
	specs []ProcSpec
	opts  LaunchOptions
}

// NewPipeline starts a Pipeline with its first command.
func NewPipeline(first *Command) *Pipeline {
	return &Pipeline{specs: []ProcSpec{first.Build()}}
}

// Then appends the next command, piping the previous command's stdout
// into this one's stdin.
func (p *Pipeline) Then(next *Command) *Pipeline {
	p.specs = append(p.specs, next.Build())
	return p
}

// Stdin sets the first command's standard input redirection.
func (p *Pipeline) Stdin(r Redirection) *Pipeline {
	p.opts.Stdin = r
	return p
}

// Input supplies string data to be written to the first command's stdin
// once the pipeline is driven through Capture or Communicate. It implies
// a piped Stdin.
func (p *Pipeline) Input(s string) *Pipeline {
	return p.InputReader(strings.NewReader(s))
}

// InputBytes is Input for a byte slice.
func (p *Pipeline) InputBytes(b []byte) *Pipeline {
	p.opts.Stdin = RedirectPipe()
	p.opts.Input = InputBytes(b)

	return p
}

// InputReader is Input for an arbitrary io.Reader, copied lazily as the
// Communicator drains it.
func (p *Pipeline) InputReader(r io.Reader) *Pipeline {
	p.opts.Stdin = RedirectPipe()
	p.opts.Input = InputFromReader(r)

	return p
}

// StderrAll overrides every command's stderr with a single shared
// redirection.
func (p *Pipeline) StderrAll(r Redirection) *Pipeline {
	p.opts.StderrAll = &r
	return p
}

// Detached marks the pipeline as detached: the returned Job's Close will
// not wait on or signal any of its processes.
func (p *Pipeline) Detached() *Pipeline {
	p.opts.Detached = true
	return p
}

// Checked makes the returned Job's terminator methods return an
// *ExitError for a non-successful final exit status.
func (p *Pipeline) Checked() *Pipeline {
	p.opts.Checked = true
	return p
}

// Start launches the pipeline.
func (p *Pipeline) Start(ctx context.Context) (*Job, error) {
	return Launch(ctx, p.specs, p.opts)
}

// Run is a convenience wrapper for launching and joining a single
// command: RedirectNone for stdout/stderr, inherited from the parent.
func Run(ctx context.Context, path string, args ...string) (ExitStatus, error) {
	job, err := Launch(ctx, []ProcSpec{{Path: path, Args: args}}, LaunchOptions{Checked: true})
	if err != nil {
		return ExitStatus{}, err
	}

	return job.Join()
}

// RunCaptured launches a single command with its stdout and stderr piped
// and returns its captured output alongside its exit status.
func RunCaptured(ctx context.Context, path string, args ...string) (*CaptureResult, error) {
	job, err := Launch(ctx, []ProcSpec{{
		Path:   path,
		Args:   args,
		Stdout: RedirectPipe(),
		Stderr: RedirectPipe(),
	}}, LaunchOptions{Checked: true})
	if err != nil {
		return nil, err
	}

	return job.Capture()
}

// StreamLines runs path with stdout scanned line-by-line, invoking onLine
// for each line as it arrives, and returns the command's final exit
// status once it completes.
func StreamLines(ctx context.Context, onLine func(string), path string, args ...string) (ExitStatus, error) {
	pr, pw := io.Pipe()

	scanErrCh := make(chan error, 1)

	go func() {
		defer pr.Close()

		scanner := bufio.NewScanner(pr)
		for scanner.Scan() {
			onLine(scanner.Text())
		}

		scanErrCh <- scanner.Err()
	}()

	job, err := Launch(ctx, []ProcSpec{{
		Path:   path,
		Args:   args,
		Stdout: RedirectWriter(pw),
	}}, LaunchOptions{Checked: true})
	if err != nil {
		_ = pw.Close()
		return ExitStatus{}, err
	}

	status, joinErr := job.Join()

	_ = pw.Close()

	if scanErr := <-scanErrCh; scanErr != nil {
		return status, fmt.Errorf("stream lines: %w", scanErr)
	}

	return status, joinErr
}
