// Package subprocess spawns, controls, and communicates with external OS
// processes and pipelines of them.
//
// # Core types
//
//   - Job: the parent-side pipe endpoints and processes produced by one
//     Launch call.
//   - Process: a handle to a single spawned process.
//   - Communicator: a deadlock-free, deadline- and size-bounded driver of
//     a child's stdin/stdout/stderr.
//
// # Redirection
//
// Each command's stdin/stdout/stderr is configured with a Redirection:
// RedirectNone, RedirectNull, RedirectPipe, RedirectMerge, RedirectFile,
// RedirectReader, or RedirectWriter.
//
// # Cleanup
//
// Launch never returns a partial pipeline: if any command after the
// first fails to start, every already-started process is killed and
// waited before the error is returned. A caller that receives a *Job
// must release it via Close, CloseTimeout, Join, or Capture.
package subprocess
