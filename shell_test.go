package subprocess_test

import (
	"testing"

	"github.com/hniksic/go-subprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_SplitsQuotedArguments(t *testing.T) {
	t.Parallel()

	spec, err := subprocess.ParseCommand(`echo "hello world" foo`)
	require.NoError(t, err)
	assert.Equal(t, "echo", spec.Path)
	assert.Equal(t, []string{"hello world", "foo"}, spec.Args)
}

func TestParseCommand_RejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := subprocess.ParseCommand("   ")
	require.Error(t, err)
}

func TestParseTargetOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, subprocess.OSLinux, subprocess.ParseTargetOS("Linux"))
	assert.Equal(t, subprocess.OSWindows, subprocess.ParseTargetOS("windows"))
	assert.Equal(t, subprocess.OSDarwin, subprocess.ParseTargetOS("macOS"))
	assert.Equal(t, subprocess.OSUnknown, subprocess.ParseTargetOS("plan9"))
}

func TestTargetOS_ShellCommand(t *testing.T) {
	t.Parallel()

	spec := subprocess.OSLinux.ShellCommand("echo hi")
	assert.Equal(t, "sh", spec.Path)
	assert.Equal(t, []string{"-c", "echo hi"}, spec.Args)

	spec = subprocess.OSWindows.ShellCommand("Write-Host hi")
	assert.Equal(t, "powershell", spec.Path)
}
