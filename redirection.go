package subprocess

import (
	"io"
	"os"
)

// redirKind identifies how a child's stdin, stdout, or stderr is connected.
type redirKind int

const (
	redirNone redirKind = iota
	redirNull
	redirPipe
	redirMerge
	redirFile
	redirReader
	redirWriter
)

// Redirection specifies where one of a child process's standard streams
// connects. Construct one with RedirectNone, RedirectNull, RedirectPipe,
// RedirectMerge, RedirectFile, RedirectReader, or RedirectWriter.
type Redirection struct {
	kind   redirKind
	file   *os.File
	reader io.Reader
	writer io.Writer
}

// RedirectNone leaves the stream connected to whatever the parent process
// inherited (the zero value of Redirection).
func RedirectNone() Redirection { return Redirection{kind: redirNone} }

// RedirectNull connects the stream to the OS null device, opened fresh for
// this one redirection.
func RedirectNull() Redirection { return Redirection{kind: redirNull} }

// RedirectPipe asks Launch to allocate a pipe. The parent-facing end is
// exposed through the returned Job's Stdin/Stdout/Stderr field; internal
// pipeline positions are synthesized automatically and must not be set
// this way by callers.
func RedirectPipe() Redirection { return Redirection{kind: redirPipe} }

// RedirectMerge duplicates a command's stdout onto its stderr, or vice
// versa. It is only valid as the value of Stdout or Stderr on a ProcSpec,
// never as Stdin, and never on both fields of the same ProcSpec at once.
func RedirectMerge() Redirection { return Redirection{kind: redirMerge} }

// RedirectFile connects the stream directly to an already-open file,
// handed to the child with no intermediate copy. The caller retains
// ownership of f and must close it once the Job no longer needs it.
func RedirectFile(f *os.File) Redirection { return Redirection{kind: redirFile, file: f} }

// RedirectReader connects a command's stdin to an arbitrary io.Reader.
// Launch allocates its own pipe and copies from r to the child in a
// background goroutine managed by os/exec.
func RedirectReader(r io.Reader) Redirection { return Redirection{kind: redirReader, reader: r} }

// RedirectWriter connects a command's stdout or stderr to an arbitrary
// io.Writer. Launch allocates its own pipe and copies from the child to w
// in a background goroutine managed by os/exec.
func RedirectWriter(w io.Writer) Redirection { return Redirection{kind: redirWriter, writer: w} }

func (r Redirection) isZero() bool { return r.kind == redirNone }
