package crypto

import "streamchat/internal/domain"

// Keystream is a linear-congruential byte generator. Two peers seed one each
// from the shared secret and must consume bytes in the same global order;
// nothing resynchronizes them afterwards. The sequence is deterministic and
// deliberately not cryptographically unpredictable.
type Keystream struct {
	multiplier uint32
	increment  uint32
	state      uint32
}

// NewKeystream returns a generator positioned at seed. The 2^32 modulus of
// the recurrence is the natural wraparound of the 32-bit state.
func NewKeystream(params domain.LCGParams, seed domain.Seed) *Keystream {
	return &Keystream{
		multiplier: params.Multiplier,
		increment:  params.Increment,
		state:      uint32(seed),
	}
}

// NextByte advances the state once and returns the top 8 bits of the new
// value. The state moves only when a byte is produced.
func (k *Keystream) NextByte() byte {
	k.state = k.multiplier*k.state + k.increment
	return byte(k.state >> 24)
}

// XORKeyStream XORs src into dst with successive keystream bytes, consuming
// exactly len(src) of them. dst and src may be the same slice; encrypting
// and decrypting are the same operation. It follows the shape of
// crypto/cipher.Stream.
func (k *Keystream) XORKeyStream(dst, src []byte) {
	for i, b := range src {
		dst[i] = b ^ k.NextByte()
	}
}
