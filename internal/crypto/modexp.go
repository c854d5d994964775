package crypto

import "math/bits"

// ModExp computes base^exp mod modulus by square-and-multiply. A modulus of
// one yields zero unconditionally.
func ModExp(base, exp, modulus uint64) uint64 {
	if modulus == 1 {
		return 0
	}
	result := uint64(1)
	base %= modulus
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		exp >>= 1
		base = mulMod(base, base, modulus)
	}
	return result
}

// mulMod reduces the full 128-bit product of a and b, so no intermediate
// wraps before the reduction regardless of the modulus.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
