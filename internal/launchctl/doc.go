// Package launchctl loads and unloads the CamillaDSP launchd job by running
// the launchctl executable.
//
// Only the exit status and the stdout/stderr streams of the child are used.
// launchctl reports most problems (for example a job that is already loaded)
// on stderr while still exiting zero, so output is surfaced to the user rather
// than interpreted.
package launchctl
