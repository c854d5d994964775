// Package memzero wipes key material once it is no longer needed. The wipe
// is best effort: copies the runtime made elsewhere are out of reach.
package memzero

import "crypto/subtle"

// Bytes overwrites b with zeros in a constant-time friendly way.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}

// U64 clears a 64-bit secret in place. Private exponents live in integers
// here, not slices, so they get their own helper.
func U64(v *uint64) { *v = 0 }
