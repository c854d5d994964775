// Package keyex implements the Diffie-Hellman handshake that opens every
// chat session.
//
// # Flow
//
// Each peer, independent of connection role:
//  1. Draws a fresh uniform 64-bit private key.
//  2. Computes its public key G^priv mod P.
//  3. Writes the public key to the transport as exactly 8 bytes,
//     most-significant byte first.
//  4. Reads exactly 8 bytes back and interprets them the same way.
//  5. Computes the shared secret peerPub^priv mod P; both sides arrive at
//     the identical value.
//  6. Derives the keystream seed: the high 32 bits of the secret.
//
// # Errors
//
// ErrIncompleteHandshake is returned when the stream closes before all 8
// peer bytes arrive. Any other I/O fault is wrapped and returned. Both end
// the session; nothing here retries.
//
// # Security notes
//
// The exchange is unauthenticated and the 64-bit group is far too small to
// resist discrete-log attacks. That is the intended design of this toy
// protocol, kept exactly as it was built.
package keyex
