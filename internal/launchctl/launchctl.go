package launchctl

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"revctl/internal/logger"
)

// DefaultBinary is the macOS service management executable.
const DefaultBinary = "launchctl"

// alreadyLoadedHint is printed when `load` writes to stderr, which in practice
// almost always means the job is registered already.
const alreadyLoadedHint = "make sure that plist is unloaded first! load throws error when the plist is already loaded."

// Supervisor runs load/unload actions through Binary.
type Supervisor struct {
	Binary string
}

// New returns a Supervisor that uses launchctl from PATH.
func New() *Supervisor {
	return &Supervisor{Binary: DefaultBinary}
}

// result is the captured output of one supervision command.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// run executes `<binary> <action> <plistPath>` and waits for it to exit.
// A non-zero exit is not an error here: callers decide what the output means.
// Only a failure to launch the process is returned, as SupervisorUnavailableError.
func (s *Supervisor) run(ctx context.Context, action, plistPath string) (result, error) {
	cmd := exec.CommandContext(ctx, s.Binary, action, plistPath)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{
		stdout: lossy(stdout.Bytes()),
		stderr: lossy(stderr.Bytes()),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.exitCode = exitErr.ExitCode()
	default:
		return res, &SupervisorUnavailableError{Binary: s.Binary, Err: err}
	}

	logger.Debug("[DEBUG] %s %s exited with %d\n", s.Binary, action, res.exitCode)
	return res, nil
}

// Load registers the plist with launchd so CamillaDSP runs now and at login.
//
// Anything written to stderr is shown together with a hint that the plist may
// already be loaded; this is reported, not returned as an error.
func (s *Supervisor) Load(ctx context.Context, plistPath string) error {
	logger.Info("loading plist at %s\n", logger.Path(plistPath))

	res, err := s.run(ctx, "load", plistPath)
	if err != nil {
		return err
	}

	if res.stderr != "" {
		logger.Error("failed to load plist, stderr: \n %s\n", res.stderr)
		logger.Alert("%s\n", alreadyLoadedHint)
		return nil
	}
	if res.exitCode != 0 {
		logger.Debug("[DEBUG] load exited with %d and no stderr\n", res.exitCode)
	}
	return nil
}

// Unload removes the plist from launchd. Both output streams are echoed
// verbatim whatever the outcome.
func (s *Supervisor) Unload(ctx context.Context, plistPath string) error {
	logger.Info("unloading plist at %s\n", logger.Path(plistPath))

	res, err := s.run(ctx, "unload", plistPath)
	if err != nil {
		return err
	}

	logger.Warn("Stdout: \n%s\n Stderr: \n%s\n", res.stdout, res.stderr)
	return nil
}

// lossy decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
