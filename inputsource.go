package subprocess

import (
	"bytes"
	"io"
)

// inputKind distinguishes the two ways a Communicator can feed a child's
// stdin.
type inputKind int

const (
	inputNone inputKind = iota
	inputBytes
	inputReader
)

// InputSource describes the data a Communicator writes to a child's stdin.
// It is consumed exactly once. The zero value writes nothing and closes
// stdin immediately.
type InputSource struct {
	kind   inputKind
	bytes  []byte
	reader io.Reader
}

// InputBytes returns an InputSource that writes buf to the child's stdin
// and then closes it.
func InputBytes(buf []byte) InputSource {
	return InputSource{kind: inputBytes, bytes: buf}
}

// InputFromReader returns an InputSource that copies r to the child's
// stdin in chunks until r is exhausted, then closes stdin.
func InputFromReader(r io.Reader) InputSource {
	return InputSource{kind: inputReader, reader: r}
}

// asReader returns an io.Reader that yields the source's bytes exactly once,
// regardless of which constructor built it.
func (s InputSource) asReader() io.Reader {
	switch s.kind {
	case inputBytes:
		return bytes.NewReader(s.bytes)
	case inputReader:
		return s.reader
	default:
		return nil
	}
}
