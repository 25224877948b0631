package subprocess_test

import (
	"strings"
	"testing"
	"time"

	"github.com/hniksic/go-subprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunicator_FeedsStdinAndCollectsStdout(t *testing.T) {
	t.Parallel()

	job, err := subprocess.Launch(ctx(t), []subprocess.ProcSpec{{
		Path:   "cat",
		Stdout: subprocess.RedirectPipe(),
	}}, subprocess.LaunchOptions{
		Stdin: subprocess.RedirectPipe(),
		Input: subprocess.InputBytes([]byte("round trip\n")),
	})
	require.NoError(t, err)

	result, err := job.Capture()
	require.NoError(t, err)
	assert.Equal(t, "round trip\n", string(result.Stdout))
}

func TestCommunicator_LargeInputDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", 4*1024*1024)

	job, err := subprocess.Launch(ctx(t), []subprocess.ProcSpec{{
		Path:   "cat",
		Stdout: subprocess.RedirectPipe(),
	}}, subprocess.LaunchOptions{
		Stdin: subprocess.RedirectPipe(),
		Input: subprocess.InputBytes([]byte(big)),
	})
	require.NoError(t, err)

	result, err := job.Capture()
	require.NoError(t, err)
	assert.Equal(t, len(big), len(result.Stdout))
}

func TestCommunicator_TimeoutReturnsPartialOutput(t *testing.T) {
	t.Parallel()

	job, err := subprocess.Launch(ctx(t), []subprocess.ProcSpec{{
		Path:   "sh",
		Args:   []string{"-c", "echo first; sleep 5; echo second"},
		Stdout: subprocess.RedirectPipe(),
	}}, subprocess.LaunchOptions{})
	require.NoError(t, err)

	defer func() { _ = job.Kill() }()

	result, err := job.CaptureTimeout(300 * time.Millisecond)
	require.Error(t, err)

	var timeoutErr *subprocess.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "first\n", string(result.Stdout))
}

func TestCommunicator_MaxBytesCapsOutput(t *testing.T) {
	t.Parallel()

	job, err := subprocess.Launch(ctx(t), []subprocess.ProcSpec{{
		Path:   "sh",
		Args:   []string{"-c", "head -c 1000 /dev/zero"},
		Stdout: subprocess.RedirectPipe(),
	}}, subprocess.LaunchOptions{})
	require.NoError(t, err)

	comm := job.Communicate()
	comm.MaxBytes = 100

	result, err := comm.Run(ctx(t))
	require.NoError(t, err)
	assert.True(t, result.StdoutCapped)
	assert.Equal(t, 100, len(result.Stdout))

	_ = job.Wait()
}
