//go:build windows

package subprocess

// signal always reports no signal on Windows; process termination there
// is always represented as an exit code, including for processes killed
// via Process.Kill.
func (s ExitStatus) signal() (int, bool) {
	return 0, false
}
