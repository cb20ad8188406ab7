package cmd

import (
	"context" // Optional deadline for the daemon exchange
	"fmt"     // Output and error wrapping

	"github.com/spf13/cobra" // Command definitions

	"revctl/internal/camilla" // CamillaDSP websocket client
)

// newVersionCmd asks CamillaDSP for its version over the websocket and prints
// it next to this program's own Version.
//
// One handshake, one request frame, one reply frame. Connection and reply
// errors are returned, so run prints them and exits with status 1.
func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "CamillaDSP and REV version",
		Args:  cobra.NoArgs, // Everything comes from global flags
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Without --timeout the exchange blocks until the daemon answers or drops
			if d := a.commandTimeout(); d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			// Handshake with the daemon; a non-upgrade answer fails here before any frame is sent
			session, err := camilla.Connect(ctx, a.cfg.DSPURL)
			if err != nil {
				return fmt.Errorf("failed to connect to dsp: %w", err)
			}
			defer session.Close()

			// Single "GetVersion" round trip
			dspVersion, err := session.GetVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to get version of camilladsp: %w", err)
			}

			// Command output goes to stdout, uncolored, so it can be piped
			fmt.Fprintf(cmd.OutOrStdout(), "CamillaDSP: %s, REV8617: %s\n", dspVersion, Version)
			return nil
		},
	}
}
