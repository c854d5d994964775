// Package transport provides the single TCP connection a chat session runs
// over: listen-and-accept-one on one side, dial on the other, and the
// read/write handle split both sides use afterwards.
package transport

import (
	"fmt"
	"io"
	"net"
)

// Listener accepts exactly one chat peer.
type Listener struct {
	inner net.Listener
}

// Listen binds addr and prepares to accept a single connection.
func Listen(addr string) (*Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return &Listener{inner: l}, nil
}

// Addr reports the bound address, useful when listening on port 0.
func (l *Listener) Addr() net.Addr { return l.inner.Addr() }

// AcceptOne blocks for the first incoming connection and stops listening
// for any further ones.
func (l *Listener) AcceptOne() (net.Conn, error) {
	defer l.inner.Close()
	conn, err := l.inner.Accept()
	if err != nil {
		return nil, fmt.Errorf("accept: %w", err)
	}
	return conn, nil
}

// Dial connects to a listening peer.
func Dial(addr string) (net.Conn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return conn, nil
}

// Split hands out the two roles of one connection: a handle used only for
// incoming bytes and a handle used only for outgoing bytes. Both refer to
// the same socket, so a read blocked on the peer never prevents a later
// write, while the caller still sequences the two on a single goroutine.
func Split(conn net.Conn) (io.Reader, io.Writer) {
	return conn, conn
}
