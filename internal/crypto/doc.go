// Package crypto exposes the primitives the chat protocol is built from.
//
// Contents
//
//   - Fixed-width modular exponentiation with 128-bit intermediates (ModExp)
//   - Diffie-Hellman key generation and agreement over a 64-bit group
//     (GenerateKeyPair, PublicKey, DH)
//   - The linear-congruential keystream generator and its XOR stream
//     application (Keystream)
//
// # Notes
//
// These are the toy primitives of this protocol, kept exactly as designed: a
// 64-bit modulus, an unauthenticated exchange and a linear keystream. They
// are not a substitute for real cryptography and the package makes no
// attempt to be one.
package crypto
