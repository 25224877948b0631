package subprocess

import (
	"context"
	"fmt"
	"os"
)

type streamDir int

const (
	dirIn streamDir = iota
	dirOut
)

// resolveRedirection turns one Redirection into the value an exec.Cmd
// field should hold, plus bookkeeping for files the caller of Launch owns
// (parentFile, only for outward positions) and files only the parent
// process needs to close once Start has handed them to the child.
//
// Merge is not handled here; the caller resolves the counterpart stream
// first and assigns the same value to both.
func resolveRedirection(r Redirection, dir streamDir, outward bool) (value any, parentFile *os.File, closeAfterStart []*os.File, err error) {
	switch r.kind {
	case redirNone:
		return nil, nil, nil, nil

	case redirNull:
		f, err := openNull(dir == dirOut)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open null device: %w", err)
		}

		return f, nil, []*os.File{f}, nil

	case redirPipe:
		readEnd, writeEnd, err := os.Pipe()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("allocate pipe: %w", err)
		}

		childEnd, parentEnd := readEnd, writeEnd
		if dir == dirOut {
			childEnd, parentEnd = writeEnd, readEnd
		}

		if outward {
			return childEnd, parentEnd, []*os.File{childEnd}, nil
		}

		return childEnd, nil, []*os.File{childEnd, parentEnd}, nil

	case redirFile:
		return r.file, nil, nil, nil

	case redirReader:
		return r.reader, nil, nil, nil

	case redirWriter:
		return r.writer, nil, nil, nil

	case redirMerge:
		return nil, nil, nil, &InvalidInputError{Reason: "merge must be resolved relative to its counterpart stream"}

	default:
		return nil, nil, nil, &InvalidInputError{Reason: "unknown redirection kind"}
	}
}

func validateLaunch(specs []ProcSpec, opts LaunchOptions) error {
	for i, spec := range specs {
		if spec.Path == "" {
			return &InvalidInputError{Reason: fmt.Sprintf("command %d: empty path", i)}
		}

		if spec.Stdout.kind == redirMerge && spec.Stderr.kind == redirMerge {
			return &InvalidInputError{Reason: fmt.Sprintf("command %d: stdout and stderr cannot both merge into each other", i)}
		}

		if i != len(specs)-1 && !spec.Stdout.isZero() {
			return &InvalidInputError{Reason: fmt.Sprintf("command %d: stdout is an internal pipeline connection and cannot be redirected", i)}
		}
	}

	if opts.Stdin.kind == redirMerge {
		return &InvalidInputError{Reason: "stdin cannot use merge"}
	}

	if opts.StderrAll != nil && opts.StderrAll.kind == redirMerge {
		return &InvalidInputError{Reason: "stderr_all cannot use merge"}
	}

	return nil
}

// Launch validates specs and opts, resolves every redirection, spawns the
// commands in order connecting each adjacent pair's stdout to the next's
// stdin, and returns a Job owning the outward-facing pipe ends and the
// spawned processes. If any command after the first fails to start, every
// already-started process is terminated and waited before the error is
// returned; no partial Job is ever handed back.
//
// An empty specs launches nothing: the returned Job has no Processes, and
// Wait/Join report a vacuous success immediately.
func Launch(ctx context.Context, specs []ProcSpec, opts LaunchOptions) (*Job, error) {
	if err := validateLaunch(specs, opts); err != nil {
		return nil, err
	}

	n := len(specs)

	if n == 0 {
		return &Job{detached: opts.Detached, checked: opts.Checked, stdinData: opts.Input}, nil
	}

	internalRead := make([]*os.File, n-1)
	internalWrite := make([]*os.File, n-1)

	cleanupInternal := func() {
		for i := range internalRead {
			if internalRead[i] != nil {
				_ = internalRead[i].Close()
			}

			if internalWrite[i] != nil {
				_ = internalWrite[i].Close()
			}
		}
	}

	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			cleanupInternal()

			return nil, fmt.Errorf("allocate pipeline connector %d: %w", i, err)
		}

		internalRead[i] = r
		internalWrite[i] = w
	}

	job := &Job{detached: opts.Detached, checked: opts.Checked, stdinData: opts.Input}

	var closeAfterAllStarts []*os.File

	var rollback func()

	rollback = func() {
		for _, f := range closeAfterAllStarts {
			_ = f.Close()
		}

		cleanupInternal()

		for _, p := range job.Processes {
			_ = p.Kill()
			p.Wait()
		}
	}

	// StderrAll resolves once: every command's stderr shares the same
	// underlying value, whether that's a single shared pipe, a single
	// file, or a single writer.
	var stderrAllVal any

	if opts.StderrAll != nil {
		v, parent, closers, err := resolveRedirection(*opts.StderrAll, dirOut, true)
		if err != nil {
			rollback()

			return nil, err
		}

		stderrAllVal = v
		job.Stderr = parent
		closeAfterAllStarts = append(closeAfterAllStarts, closers...)
	}

	for i, spec := range specs {
		var stdinVal, stdoutVal, stderrVal any

		switch {
		case i == 0:
			v, parent, closers, err := resolveRedirection(opts.Stdin, dirIn, true)
			if err != nil {
				rollback()

				return nil, err
			}

			stdinVal = v
			job.Stdin = parent
			closeAfterAllStarts = append(closeAfterAllStarts, closers...)

		default:
			stdinVal = internalRead[i-1]
		}

		stdoutIsMerge := i == n-1 && spec.Stdout.kind == redirMerge

		if i < n-1 {
			stdoutVal = internalWrite[i]
		} else if !stdoutIsMerge {
			v, parent, closers, err := resolveRedirection(spec.Stdout, dirOut, true)
			if err != nil {
				rollback()

				return nil, err
			}

			stdoutVal = v
			job.Stdout = parent
			closeAfterAllStarts = append(closeAfterAllStarts, closers...)
		}

		switch {
		case opts.StderrAll != nil:
			stderrVal = stderrAllVal

		case spec.Stderr.kind == redirMerge:
			stderrVal = stdoutVal

		default:
			v, parent, closers, err := resolveRedirection(spec.Stderr, dirOut, i == n-1)
			if err != nil {
				rollback()

				return nil, err
			}

			stderrVal = v
			closeAfterAllStarts = append(closeAfterAllStarts, closers...)

			if i == n-1 {
				job.Stderr = parent

				if stdoutIsMerge {
					job.Stdout = parent
				}
			}
		}

		if stdoutIsMerge {
			stdoutVal = stderrVal
		}

		cmd := buildCmd(ctx, spec, resolvedCmd{stdin: stdinVal, stdout: stdoutVal, stderr: stderrVal})

		if err := cmd.Start(); err != nil {
			rollback()

			return nil, fmt.Errorf("start command %d (%s): %w", i, spec.Path, err)
		}

		job.Processes = append(job.Processes, newProcess(spec.Path, cmd, spec.SetPGID))

		if i > 0 {
			_ = internalRead[i-1].Close()
			internalRead[i-1] = nil
		}

		if i < n-1 {
			_ = internalWrite[i].Close()
			internalWrite[i] = nil
		}
	}

	for _, f := range closeAfterAllStarts {
		_ = f.Close()
	}

	if opts.Detached {
		for _, p := range job.Processes {
			p.Detach()
		}
	}

	return job, nil
}
