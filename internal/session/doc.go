// Package session runs the duplex chat loop on top of an established
// keystream.
//
// # Protocol
//
// The two peers follow a half-duplex turn-taking protocol: one sends while
// the other receives, then the roles flip. The listener sends first, the
// dialer receives first, and the mirrored loops are one routine
// parameterized by which turn comes first. Because each peer's generator
// advances exactly once per plaintext byte handled, and only the fixed
// alternation orders those events, any deviation from the turn order
// desynchronizes the keystreams and garbles everything that follows.
//
// # Message boundaries
//
// There are none. A message is whatever one bounded transport read returns;
// messages longer than the receive buffer, or fragmented below one read by
// the transport, come out wrong. That is a known limitation of the wire
// format, reproduced rather than repaired.
//
// # Termination
//
// A zero-byte transport read (peer closed) or exhausted local input ends
// the session with a nil error. Any transport fault ends it with that
// fault. There is no close handshake.
package session
