package subprocess_test

import (
	"sync"
	"testing"

	"github.com/hniksic/go-subprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_BuilderChainsCommands(t *testing.T) {
	t.Parallel()

	job, err := subprocess.NewPipeline(subprocess.Cmd("echo", "one\ntwo")).
		Then(subprocess.Cmd("sort").Stdout(subprocess.RedirectPipe())).
		Start(ctx(t))
	require.NoError(t, err)

	result, err := job.Capture()
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(result.Stdout))
}

func TestPipeline_InputBytes(t *testing.T) {
	t.Parallel()

	job, err := subprocess.NewPipeline(subprocess.Cmd("cat").Stdout(subprocess.RedirectPipe())).
		InputBytes([]byte("hello\n")).
		Start(ctx(t))
	require.NoError(t, err)

	result, err := job.Capture()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(result.Stdout))
}

func TestRun_ReturnsSuccessStatus(t *testing.T) {
	t.Parallel()

	status, err := subprocess.Run(ctx(t), "true")
	require.NoError(t, err)
	assert.True(t, status.Success())
}

func TestRun_ChecksExitCode(t *testing.T) {
	t.Parallel()

	_, err := subprocess.Run(ctx(t), "false")
	require.Error(t, err)
}

func TestRunCaptured_CollectsStdout(t *testing.T) {
	t.Parallel()

	result, err := subprocess.RunCaptured(ctx(t), "echo", "captured")
	require.NoError(t, err)
	assert.Equal(t, "captured\n", string(result.Stdout))
}

func TestStreamLines_InvokesCallbackPerLine(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex

	var lines []string

	status, err := subprocess.StreamLines(ctx(t), func(line string) {
		mu.Lock()
		defer mu.Unlock()

		lines = append(lines, line)
	}, "printf", "one\ntwo\nthree\n")
	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
