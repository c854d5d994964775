package app

import (
	"fmt"
	"net"

	"streamchat/internal/crypto"
	"streamchat/internal/protocol/keyex"
	"streamchat/internal/session"
	"streamchat/internal/transport"
)

// App assembles transport, handshake and session for the CLI.
type App struct {
	cfg Config
}

// New returns an App built on cfg.
func New(cfg Config) *App { return &App{cfg: cfg} }

// Serve listens on port, accepts a single peer and chats as the first
// sender.
func (a *App) Serve(port int) error {
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	l, err := transport.Listen(addr)
	if err != nil {
		return err
	}
	a.printf("listening on %s, waiting for a peer", addr)

	conn, err := l.AcceptOne()
	if err != nil {
		return err
	}
	defer conn.Close()
	a.printf("peer connected from %s", conn.RemoteAddr())

	return a.chat(conn, session.FirstSender, "client")
}

// Connect dials a listening peer and chats as the first receiver.
func (a *App) Connect(addr string) error {
	conn, err := transport.Dial(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	return a.chat(conn, session.FirstReceiver, "server")
}

// chat performs the key exchange on conn and runs the turn-taking loop.
func (a *App) chat(conn net.Conn, role session.Role, peerLabel string) error {
	recv, send := transport.Split(conn)

	a.printf("dh: p=%016X g=%d", a.cfg.Group.Prime, a.cfg.Group.Generator)
	hs, err := keyex.Exchange(send, recv, a.cfg.Group, a.cfg.Random)
	if err != nil {
		return err
	}
	a.printf("dh: our public key  %016X", hs.LocalPublic)
	a.printf("dh: peer public key %016X", hs.PeerPublic)
	a.printf("dh: shared secret %016X, keystream seed %08X", hs.Secret, hs.Seed)
	a.printf("secure channel established, type messages:")

	sess := session.New(session.Config{
		Keystream:  crypto.NewKeystream(a.cfg.LCG, hs.Seed),
		TransportR: recv,
		TransportW: send,
		Input:      a.cfg.Input,
		Display: func(text string) {
			a.printf("[%s] %s", peerLabel, text)
		},
		RecvBufferSize: a.cfg.RecvBufferSize,
	})
	return sess.Run(role)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.cfg.Output, format+"\n", args...)
}
