package app

import (
	"crypto/rand"
	"io"
	"os"

	"streamchat/internal/domain"
	"streamchat/internal/session"
)

// Config holds runtime wiring options for a chat peer. The Group and LCG
// parameter sets must match the peer's; everything else is local.
type Config struct {
	Group domain.Group
	LCG   domain.LCGParams

	// RecvBufferSize bounds one incoming message.
	RecvBufferSize int

	// Random supplies handshake key material.
	Random io.Reader

	// Input is the local chat input, one line per turn.
	Input io.Reader

	// Output receives status lines and decrypted messages.
	Output io.Writer
}

// DefaultConfig returns the compiled-in parameter set shared by every peer
// of this program, wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Group:          domain.DefaultGroup,
		LCG:            domain.DefaultLCG,
		RecvBufferSize: session.DefaultRecvBufferSize,
		Random:         rand.Reader,
		Input:          os.Stdin,
		Output:         os.Stdout,
	}
}
