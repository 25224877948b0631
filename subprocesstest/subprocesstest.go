// Package subprocesstest provides fixtures for testing code built on top
// of the subprocess package, the way invoketest provided a shared
// contract suite for invoke's providers. There is only one environment
// here (the local OS), so this package is a grab bag of small test
// doubles rather than a multi-provider contract runner.
package subprocesstest

import (
	"errors"
	"io"

	"github.com/stretchr/testify/mock"
)

// ErrFailingReader is returned by FailingReader once it has produced N
// bytes.
var ErrFailingReader = errors.New("subprocesstest: simulated read failure")

// FailingReader yields N bytes of the given fill byte and then fails,
// useful for exercising a Communicator's stdin-copy error path without
// needing a real misbehaving process.
type FailingReader struct {
	N    int
	Fill byte

	emitted int
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if r.emitted >= r.N {
		return 0, ErrFailingReader
	}

	n := len(p)
	if remaining := r.N - r.emitted; n > remaining {
		n = remaining
	}

	for i := range p[:n] {
		p[i] = r.Fill
	}

	r.emitted += n

	return n, nil
}

// MockWriter is an io.Writer double built on testify/mock, for asserting
// exactly what bytes a consumer wrote and in what order.
type MockWriter struct {
	mock.Mock
}

var _ io.Writer = (*MockWriter)(nil)

func (m *MockWriter) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)

	args := m.Called(cp)

	return args.Int(0), args.Error(1)
}
