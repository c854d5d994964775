package domain

// Group holds the Diffie-Hellman group parameters. Both peers must use the
// same group, agreed out of band; nothing in the protocol negotiates it.
type Group struct {
	Prime     uint64
	Generator uint64
}

// LCGParams holds the constants of the linear-congruential keystream
// generator. The modulus is fixed at 2^32, realized as the natural
// wraparound of 32-bit unsigned arithmetic.
type LCGParams struct {
	Multiplier uint32
	Increment  uint32
}

// DefaultGroup is the compiled-in group every peer of this program shares.
var DefaultGroup = Group{
	Prime:     0xD87FA3E291B4C7F3,
	Generator: 2,
}

// DefaultLCG is the compiled-in keystream parameter set.
var DefaultLCG = LCGParams{
	Multiplier: 1103515245,
	Increment:  12345,
}
