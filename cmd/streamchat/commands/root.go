package commands

import (
	"github.com/spf13/cobra"
)

const (
	defaultPort = 8080
	defaultAddr = "127.0.0.1:8080"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "streamchat",
		Short: "Stream-cipher chat with Diffie-Hellman key agreement",
	}
	root.AddCommand(serverCmd(), clientCmd())
	return root.Execute()
}
