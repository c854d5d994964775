package commands

import (
	"github.com/spf13/cobra"

	"streamchat/internal/app"
)

// client [addr]: connect to a listening peer and chat listening first.
func clientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client [host:port]",
		Short: "Connect to a listening peer and start an encrypted chat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := defaultAddr
			if len(args) == 1 {
				addr = args[0]
			}
			return app.New(app.DefaultConfig()).Connect(addr)
		},
	}
}
