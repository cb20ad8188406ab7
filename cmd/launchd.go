package cmd

import (
	"github.com/spf13/cobra" // Command definitions

	"revctl/internal/logger" // Error reporting
)

// newLoadCmd registers the plist with launchd so CamillaDSP runs now and at login.
// Failing to run launchctl is reported but does not fail the command; output
// launchctl writes to stderr is shown by the adapter together with a hint.
func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Loads background plist for running CamillaDSP now and at startup",
		Args:  cobra.NoArgs, // Everything comes from global flags
		Run: func(cmd *cobra.Command, args []string) {
			// a.cfg was validated by the root pre-run hook
			if err := a.supervisor.Load(cmd.Context(), a.cfg.PlistPath); err != nil {
				// launchctl could not be started; report and stop here
				logger.Error("%v\n", err)
			}
		},
	}
}

// newUnloadCmd removes the plist from launchd.
// launchctl's stdout and stderr are echoed verbatim; as with load, only a
// failure to start launchctl is reported as an error.
func newUnloadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unload",
		Short: "Unloads CamillaDSP background process",
		Args:  cobra.NoArgs, // Everything comes from global flags
		Run: func(cmd *cobra.Command, args []string) {
			if err := a.supervisor.Unload(cmd.Context(), a.cfg.PlistPath); err != nil {
				logger.Error("%v\n", err)
			}
		},
	}
}
