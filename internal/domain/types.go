package domain

// PrivateKey is a session-local Diffie-Hellman exponent. It is drawn fresh
// per session, never transmitted, and wiped once the shared secret exists.
type PrivateKey uint64

// PublicKey is G^PrivateKey mod P, sent to the peer exactly once.
type PublicKey uint64

// SharedSecret is the Diffie-Hellman result both peers compute on their own.
// Given correctly exchanged public keys the two values are identical.
type SharedSecret uint64

// Seed returns the keystream seed for the session: the high 32 bits of the
// secret. It is derived once and fixed for the session lifetime.
func (s SharedSecret) Seed() Seed { return Seed(s >> 32) }

// Seed is the 32-bit value a keystream generator starts from.
type Seed uint32
