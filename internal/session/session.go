package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"streamchat/internal/crypto"
)

// DefaultRecvBufferSize bounds one incoming message. The wire carries no
// length prefix, so one transport read is one message and anything larger
// than the buffer is truncated into the next turn.
const DefaultRecvBufferSize = 1024

// Role selects which half of the turn-taking protocol runs first. The
// listening peer speaks first, the connecting peer listens first; the fixed
// alternation is the only thing keeping the two keystreams aligned.
type Role int

const (
	FirstSender Role = iota
	FirstReceiver
)

// Session drives one side of an established chat, alternating between
// encrypting local lines onto the transport and decrypting what the peer
// sent back. It owns its keystream exclusively; no other goroutine touches
// session state.
type Session struct {
	keystream *crypto.Keystream
	recv      io.Reader
	send      io.Writer
	input     *bufio.Reader
	display   func(string)
	buf       []byte
}

// Config assembles a Session.
type Config struct {
	// Keystream must be seeded identically on both peers.
	Keystream *crypto.Keystream

	// TransportR and TransportW are the two handles onto the one
	// connection, one used only for incoming bytes, one only for
	// outgoing.
	TransportR io.Reader
	TransportW io.Writer

	// Input supplies local text, one line per send turn.
	Input io.Reader

	// Display is called with each decrypted message. Optional.
	Display func(text string)

	// RecvBufferSize overrides DefaultRecvBufferSize when positive.
	RecvBufferSize int
}

// New builds a Session from cfg, applying defaults.
func New(cfg Config) *Session {
	size := cfg.RecvBufferSize
	if size <= 0 {
		size = DefaultRecvBufferSize
	}
	display := cfg.Display
	if display == nil {
		display = func(string) {}
	}
	return &Session{
		keystream: cfg.Keystream,
		recv:      cfg.TransportR,
		send:      cfg.TransportW,
		input:     bufio.NewReader(cfg.Input),
		display:   display,
		buf:       make([]byte, size),
	}
}

type turnResult int

const (
	turnNext turnResult = iota
	turnRestart
	turnStop
)

// Run executes the turn-taking loop until the chat ends. A nil return is a
// graceful end: the peer closed the connection, or local input ran out.
// Transport faults are fatal and returned to the caller.
func (s *Session) Run(role Role) error {
	turns := [2]func() (turnResult, error){s.sendTurn, s.receiveTurn}
	if role == FirstReceiver {
		turns[0], turns[1] = turns[1], turns[0]
	}
	for {
		for _, turn := range turns {
			res, err := turn()
			if err != nil {
				return err
			}
			if res == turnStop {
				return nil
			}
			if res == turnRestart {
				break
			}
		}
	}
}

// sendTurn reads one local line, encrypts it and writes the ciphertext as a
// single unframed payload of identical length. A line that is empty after
// trailing-whitespace trimming restarts the round without consuming
// keystream bytes or touching the transport.
func (s *Session) sendTurn() (turnResult, error) {
	line, err := s.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return turnStop, fmt.Errorf("read input: %w", err)
	}
	msg := []byte(strings.TrimRightFunc(line, unicode.IsSpace))
	if len(msg) == 0 {
		if err != nil {
			// Local input exhausted: end the session.
			return turnStop, nil
		}
		return turnRestart, nil
	}

	ciphertext := make([]byte, len(msg))
	s.keystream.XORKeyStream(ciphertext, msg)
	if _, werr := s.send.Write(ciphertext); werr != nil {
		return turnStop, fmt.Errorf("send message: %w", werr)
	}
	return turnNext, nil
}

// receiveTurn treats the result of one transport read as one complete
// message. A zero-byte read means the peer closed the connection. Decrypted
// bytes that are not valid text are shown as an empty string, never an
// error.
func (s *Session) receiveTurn() (turnResult, error) {
	n, err := s.recv.Read(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return turnStop, fmt.Errorf("receive message: %w", err)
	}
	if n == 0 {
		return turnStop, nil
	}

	plaintext := make([]byte, n)
	s.keystream.XORKeyStream(plaintext, s.buf[:n])

	text := ""
	if utf8.Valid(plaintext) {
		text = string(plaintext)
	}
	s.display(text)
	return turnNext, nil
}
