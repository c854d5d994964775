package crypto

import (
	"encoding/binary"
	"fmt"
	"io"

	"streamchat/internal/domain"
	"streamchat/internal/util/memzero"
)

// GenerateKeyPair draws a uniform 64-bit private key from random and derives
// the matching public key in the group.
func GenerateKeyPair(group domain.Group, random io.Reader) (domain.PrivateKey, domain.PublicKey, error) {
	var buf [8]byte
	if _, err := io.ReadFull(random, buf[:]); err != nil {
		return 0, 0, fmt.Errorf("drawing private key: %w", err)
	}
	priv := domain.PrivateKey(binary.BigEndian.Uint64(buf[:]))
	memzero.Bytes(buf[:])
	return priv, PublicKey(group, priv), nil
}

// PublicKey computes G^priv mod P.
func PublicKey(group domain.Group, priv domain.PrivateKey) domain.PublicKey {
	return domain.PublicKey(ModExp(group.Generator, uint64(priv), group.Prime))
}

// DH combines our private key with the peer's public key. Both peers arrive
// at the same secret: (G^a)^b mod P = (G^b)^a mod P.
func DH(group domain.Group, priv domain.PrivateKey, peer domain.PublicKey) domain.SharedSecret {
	return domain.SharedSecret(ModExp(uint64(peer), uint64(priv), group.Prime))
}
