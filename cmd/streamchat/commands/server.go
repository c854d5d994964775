package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"streamchat/internal/app"
)

// server [port]: wait for one peer, then chat speaking first.
func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [port]",
		Short: "Listen for a single peer and start an encrypted chat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port := defaultPort
			if len(args) == 1 {
				p, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid port %q: %w", args[0], err)
				}
				port = p
			}
			return app.New(app.DefaultConfig()).Serve(port)
		},
	}
}
