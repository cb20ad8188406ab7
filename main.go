package main

import (
	"revctl/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which parses the command line and runs one of:
//   - load:    register the CamillaDSP launchd plist (runs now and at login)
//   - unload:  remove it from launchd again
//   - version: ask the CamillaDSP websocket server for its version
//
// Configuration comes from flags, optionally layered over a YAML file in the
// user's config directory. The plist path and the daemon address are validated
// before any subcommand runs.
func main() {
	cmd.Execute()
}
