// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with zap diagnostics and lifecycle
// observers, OSCommandRunner runs processes through os/exec, and the typed
// CommandFailedError and CommandExecutionError values let callers tell a
// non-zero exit apart from a process that never started.
package execshell
