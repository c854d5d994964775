package keyex

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
	"streamchat/internal/util/memzero"
)

// ErrIncompleteHandshake reports a stream that closed before the peer's full
// public key arrived. It is fatal to the session; there is no retry.
var ErrIncompleteHandshake = errors.New("keyex: connection closed mid-handshake")

// Result carries everything a caller may surface after a successful
// exchange. The private key never leaves this package.
type Result struct {
	LocalPublic domain.PublicKey
	PeerPublic  domain.PublicKey
	Secret      domain.SharedSecret
	Seed        domain.Seed
}

// Exchange runs one Diffie-Hellman public-key exchange over the transport.
// Both peers execute the identical sequence regardless of who connected:
// send the own public key as 8 big-endian bytes, then block for the peer's
// 8 bytes. Over a stream transport the symmetric order cannot deadlock; the
// write is buffered by the transport while the read waits only on data
// arrival.
func Exchange(w io.Writer, r io.Reader, group domain.Group, random io.Reader) (Result, error) {
	priv, pub, err := crypto.GenerateKeyPair(group, random)
	if err != nil {
		return Result{}, err
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(pub))
	if _, err := w.Write(buf[:]); err != nil {
		return Result{}, fmt.Errorf("send public key: %w", err)
	}

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Result{}, ErrIncompleteHandshake
		}
		return Result{}, fmt.Errorf("receive public key: %w", err)
	}
	peer := domain.PublicKey(binary.BigEndian.Uint64(buf[:]))

	secret := crypto.DH(group, priv, peer)
	memzero.U64((*uint64)(&priv))

	return Result{
		LocalPublic: pub,
		PeerPublic:  peer,
		Secret:      secret,
		Seed:        secret.Seed(),
	}, nil
}
