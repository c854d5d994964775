package crypto_test

import (
	"bytes"
	"testing"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
)

func newKeystream(seed domain.Seed) *crypto.Keystream {
	return crypto.NewKeystream(domain.DefaultLCG, seed)
}

func TestKeystreamDeterminism(t *testing.T) {
	a := newKeystream(0xDEADBEEF)
	b := newKeystream(0xDEADBEEF)
	for i := 0; i < 256; i++ {
		if ba, bb := a.NextByte(), b.NextByte(); ba != bb {
			t.Fatalf("byte %d differs: %#x vs %#x", i, ba, bb)
		}
	}
}

// Seed 0: the first state is (1103515245*0 + 12345) mod 2^32 = 0x00003039,
// so the first output byte is 0x00. The rest of the sequence is checked
// against the recurrence directly.
func TestKeystreamSeedZeroVector(t *testing.T) {
	g := newKeystream(0)
	if got := g.NextByte(); got != 0x00 {
		t.Fatalf("first byte = %#02x, want 0x00", got)
	}

	state := uint32(12345)
	for i := 1; i < 32; i++ {
		state = domain.DefaultLCG.Multiplier*state + domain.DefaultLCG.Increment
		want := byte(state >> 24)
		if got := g.NextByte(); got != want {
			t.Fatalf("byte %d = %#02x, want %#02x", i, got, want)
		}
	}
}

// Two independently seeded generators undo each other as long as both
// consume bytes in the same call order.
func TestXORKeyStreamRoundTrip(t *testing.T) {
	msgs := [][]byte{
		[]byte("hi"),
		[]byte("a longer message with spaces"),
		{0x00, 0xff, 0x80, 0x7f},
		bytes.Repeat([]byte{0xAA}, 1024),
	}

	enc := newKeystream(0xCAFE)
	dec := newKeystream(0xCAFE)
	for _, msg := range msgs {
		ct := make([]byte, len(msg))
		enc.XORKeyStream(ct, msg)
		if len(ct) != len(msg) {
			t.Fatalf("ciphertext length %d, want %d", len(ct), len(msg))
		}

		pt := make([]byte, len(ct))
		dec.XORKeyStream(pt, ct)
		if !bytes.Equal(pt, msg) {
			t.Fatalf("round trip of %q gave %q", msg, pt)
		}
	}
}

func TestXORKeyStreamInPlace(t *testing.T) {
	buf := []byte("in place")
	want := append([]byte(nil), buf...)

	newKeystream(42).XORKeyStream(buf, buf)
	newKeystream(42).XORKeyStream(buf, buf)
	if !bytes.Equal(buf, want) {
		t.Fatalf("in-place round trip gave %q, want %q", buf, want)
	}
}

// Both peers holding private key 1 derive public key 2 and shared secret 2,
// whose high half seeds both generators with 0. "hi" must survive the trip.
func TestSharedSeedEncryptDecrypt(t *testing.T) {
	group := domain.DefaultGroup
	priv := domain.PrivateKey(0x1)

	pub := crypto.PublicKey(group, priv)
	if pub != 2 {
		t.Fatalf("public key = %d, want 2", pub)
	}
	secret := crypto.DH(group, priv, pub)
	if secret != 2 {
		t.Fatalf("shared secret = %d, want 2", secret)
	}
	seed := secret.Seed()
	if seed != 0 {
		t.Fatalf("seed = %#x, want 0", seed)
	}

	ct := make([]byte, 2)
	newKeystream(seed).XORKeyStream(ct, []byte("hi"))
	pt := make([]byte, 2)
	newKeystream(seed).XORKeyStream(pt, ct)
	if string(pt) != "hi" {
		t.Fatalf("round trip gave %q, want %q", pt, "hi")
	}
}
