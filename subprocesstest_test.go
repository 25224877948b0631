package subprocess_test

import (
	"testing"

	"github.com/hniksic/go-subprocess"
	"github.com/hniksic/go-subprocess/subprocesstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunicator_StdinReaderErrorDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	job, err := subprocess.Launch(ctx(t), []subprocess.ProcSpec{{
		Path:   "cat",
		Stdout: subprocess.RedirectPipe(),
	}}, subprocess.LaunchOptions{
		Stdin: subprocess.RedirectPipe(),
		Input: subprocess.InputFromReader(&subprocesstest.FailingReader{N: 64, Fill: 'a'}),
	})
	require.NoError(t, err)

	_, err = job.Capture()
	require.Error(t, err)

	var commErr *subprocess.CommunicateError
	require.ErrorAs(t, err, &commErr)
	assert.ErrorIs(t, err, subprocesstest.ErrFailingReader)

	_ = job.Kill()
	job.Wait()
}

func TestMockWriter_RecordsWrites(t *testing.T) {
	t.Parallel()

	w := &subprocesstest.MockWriter{}
	w.On("Write", []byte("hi")).Return(2, nil)

	n, err := w.Write([]byte("hi"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	w.AssertExpectations(t)
}
