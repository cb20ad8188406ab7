package cmd

import (
	"fmt"  // Error wrapping for startup failures
	"os"   // Process arguments and exit status
	"time" // Daemon exchange timeout

	"github.com/spf13/cobra" // Command tree and flag parsing
	"github.com/spf13/pflag" // Flag sets, used to see which flags were set explicitly

	"revctl/internal/config"    // Flag/file layering and validation
	"revctl/internal/launchctl" // launchd load/unload adapter
	"revctl/internal/logger"    // Colored console logging
)

// Version is this program's own version, reported next to CamillaDSP's.
// Release builds set it with -ldflags "-X revctl/cmd.Version=...".
var Version = "???"

// app carries what the subcommands share: the resolved configuration and the
// launchd adapter. The configuration is filled in by the root pre-run hook.
type app struct {
	cfg        *config.Config
	supervisor *launchctl.Supervisor
}

// flagNames maps config file keys to the persistent flags that override them.
var flagNames = map[string]string{
	"plist_path":  "plist-path",
	"dsp_address": "dsp-address",
	"dsp_port":    "dsp-port",
	"timeout":     "timeout",
}

// newRootCmd builds the `revctl` command tree around a.
// All flags are persistent so they can be given after any subcommand,
// e.g. `revctl version --dsp-port 1234`.
func newRootCmd(a *app) *cobra.Command {
	// Flag targets, scoped to this command tree so every invocation starts fresh
	var (
		opts       config.Options
		configPath string
		debug      bool
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "revctl",                                     // The name of the CLI tool
		Short: "Control the CamillaDSP background service", // Short description shown in help output

		// Errors are printed once by run, not by cobra, and never with usage text
		SilenceUsage:  true,
		SilenceErrors: true,

		// Every subcommand needs a validated configuration, so it is resolved once
		// here; a missing plist or a bad address stops the run before dispatch.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Set up logging first so config problems are reported in color
			logger.Init(debug, noColor)
			if cmd.Name() == "help" {
				return nil
			}

			// The default config file is optional, one named with --config is not
			explicitConfig := cmd.Flags().Changed("config")
			if !explicitConfig {
				configPath = config.DefaultConfigPath()
			}
			fc, err := config.LoadFile(configPath, explicitConfig)
			if err != nil {
				return fmt.Errorf("failed to start CLI: %w", err)
			}

			// File values fill in whatever was not given on the command line
			if err := fc.Apply(&opts, explicitFlags(cmd.Flags())); err != nil {
				return fmt.Errorf("failed to start CLI: %w", err)
			}

			// Check the plist and build the daemon URI
			cfg, err := config.Resolve(opts)
			if err != nil {
				return fmt.Errorf("failed to start CLI: %w", err)
			}
			logger.Debug("[DEBUG] Using plist %s and dsp %s\n", cfg.PlistPath, cfg.DSPURL)
			a.cfg = cfg
			return nil
		},
	}
	// Shell completion is not offered; it would also need a resolved config
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags shared by every subcommand
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.PlistPath, "plist-path", config.DefaultPlistPath(), "Background process plist of CamillaDSP")
	flags.IntVar(&opts.DSPPort, "dsp-port", config.DefaultDSPPort, "CamillaDSP websocket port")
	flags.StringVar(&opts.DSPAddress, "dsp-address", config.DefaultDSPAddress, "CamillaDSP websocket address")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "Give up on CamillaDSP after this long (0 waits forever)")
	flags.StringVarP(&configPath, "config", "c", "", "Path to configuration file (default "+config.DefaultConfigPath()+")")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Register the subcommands (defined in launchd.go and version.go)
	rootCmd.AddCommand(newLoadCmd(a))
	rootCmd.AddCommand(newUnloadCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	return rootCmd
}

// explicitFlags reports, by config file key, which settings were given on the command line.
func explicitFlags(fs *pflag.FlagSet) func(key string) bool {
	return func(key string) bool {
		name, ok := flagNames[key]
		return ok && fs.Changed(name)
	}
}

// run executes the command tree with args and returns the process exit status.
//
// Startup errors (missing plist, bad address, unreadable config) and daemon
// errors print to stderr and yield 1. Failing to launch launchctl is reported
// by the load/unload handlers themselves and still yields 0.
func run(a *app, args []string) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v\n", err)
		return 1
	}
	return 0
}

// Execute is the entry point used by main. It never returns.
func Execute() {
	os.Exit(run(&app{supervisor: launchctl.New()}, os.Args[1:]))
}

// commandTimeout is the deadline applied to daemon exchanges, 0 meaning none.
func (a *app) commandTimeout() time.Duration {
	if a.cfg == nil {
		return 0
	}
	return a.cfg.Timeout
}
