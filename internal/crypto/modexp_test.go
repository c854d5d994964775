package crypto_test

import (
	"math/rand"
	"testing"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
)

func TestModExpKnownValues(t *testing.T) {
	tests := []struct {
		base, exp, mod, want uint64
	}{
		{2, 10, 1000, 24},
		{3, 0, 7, 1},
		{0, 5, 7, 0},
		{5, 1, 7, 5},
		{7, 2, 13, 10},
		{10, 9, 6, 4},
	}
	for _, tt := range tests {
		if got := crypto.ModExp(tt.base, tt.exp, tt.mod); got != tt.want {
			t.Errorf("ModExp(%d, %d, %d) = %d, want %d", tt.base, tt.exp, tt.mod, got, tt.want)
		}
	}
}

func TestModExpModulusOne(t *testing.T) {
	cases := []struct{ base, exp uint64 }{
		{0, 0},
		{1, 1},
		{2, 64},
		{^uint64(0), ^uint64(0)},
	}
	for _, c := range cases {
		if got := crypto.ModExp(c.base, c.exp, 1); got != 0 {
			t.Errorf("ModExp(%d, %d, 1) = %d, want 0", c.base, c.exp, got)
		}
	}
}

// The agreement law behind the handshake: raising the peer's public key to
// the own exponent lands both sides on the same value.
func TestModExpAgreement(t *testing.T) {
	group := domain.DefaultGroup
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		pubA := crypto.ModExp(group.Generator, a, group.Prime)
		pubB := crypto.ModExp(group.Generator, b, group.Prime)
		secretA := crypto.ModExp(pubB, a, group.Prime)
		secretB := crypto.ModExp(pubA, b, group.Prime)
		if secretA != secretB {
			t.Fatalf("secrets diverge for a=%#x b=%#x: %016X vs %016X", a, b, secretA, secretB)
		}
	}
}

// (p-1)^2 overflows 64 bits long before the reduction, so a single-width
// implementation gets this wrong.
func TestModExpWideIntermediate(t *testing.T) {
	p := domain.DefaultGroup.Prime
	if got := crypto.ModExp(p-1, 2, p); got != 1 {
		t.Fatalf("ModExp(p-1, 2, p) = %d, want 1", got)
	}
}

func TestDHAgreement(t *testing.T) {
	group := domain.DefaultGroup
	privA, privB := domain.PrivateKey(0x1234567890ABCDEF), domain.PrivateKey(0xFEDCBA0987654321)
	pubA := crypto.PublicKey(group, privA)
	pubB := crypto.PublicKey(group, privB)

	secretA := crypto.DH(group, privA, pubB)
	secretB := crypto.DH(group, privB, pubA)
	if secretA != secretB {
		t.Fatalf("shared secrets differ: %016X vs %016X", secretA, secretB)
	}
	if secretA.Seed() != secretB.Seed() {
		t.Fatalf("seeds differ: %08X vs %08X", secretA.Seed(), secretB.Seed())
	}
}
