package subprocess

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/shlex"
)

// TargetOS identifies the operating system a shell command should be
// built for. This module only ever executes locally, so it exists purely
// to pick the right shell invocation for ShellCommand.
type TargetOS int

const (
	OSUnknown TargetOS = iota
	OSLinux
	OSWindows
	OSDarwin
)

func (t TargetOS) String() string {
	switch t {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSDarwin:
		return "darwin"
	default:
		return "unknown"
	}
}

// ShellCommand builds a ProcSpec that runs script inside the system
// shell: "sh -c <script>" on Unix-likes, PowerShell on Windows.
func (t TargetOS) ShellCommand(script string) ProcSpec {
	switch t {
	case OSWindows:
		return ProcSpec{
			Path: "powershell",
			Args: []string{"-NoProfile", "-NonInteractive", "-Command", script},
		}
	default:
		return ProcSpec{
			Path: "sh",
			Args: []string{"-c", script},
		}
	}
}

// ParseTargetOS converts a runtime.GOOS-style string to a TargetOS.
func ParseTargetOS(s string) TargetOS {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	case "darwin", "macos":
		return OSDarwin
	default:
		return OSUnknown
	}
}

// DetectLocalOS returns the TargetOS of the currently running process.
func DetectLocalOS() TargetOS {
	return ParseTargetOS(runtime.GOOS)
}

// ParseCommand splits a shell-style command line into a ProcSpec using
// POSIX quoting rules, without invoking a shell.
func ParseCommand(line string) (ProcSpec, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return ProcSpec{}, fmt.Errorf("parse command: %w", err)
	}

	if len(parts) == 0 {
		return ProcSpec{}, errors.New("parse command: empty command")
	}

	return ProcSpec{Path: parts[0], Args: parts[1:]}, nil
}
