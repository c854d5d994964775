// Package app wires application dependencies for the CLI.
//
// It connects (or accepts) the one TCP peer, runs the key exchange, seeds
// the keystream and hands everything to a session, surfacing the handshake
// details on the configured output along the way.
package app
