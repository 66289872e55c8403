package randsrc

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const seedInfo = "passgen/randsrc/seeded/v1"

// Seeded is a deterministic source producing the ChaCha20 keystream for a key
// derived from the seed.
type Seeded struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

var _ rand.Source = (*Seeded)(nil)

// NewSeeded derives a ChaCha20 key and nonce from seed with HKDF-SHA256.
func NewSeeded(seed []byte) (*Seeded, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	defer clear(material)

	kdf := hkdf.New(sha256.New, seed, nil, []byte(seedInfo))
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, fmt.Errorf("randsrc: derive key: %w", err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("randsrc: init cipher: %w", err)
	}

	return &Seeded{cipher: c}, nil
}

// FromUint64 is NewSeeded for an integer seed. It cannot fail.
func FromUint64(seed uint64) *Seeded {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seed)
	s, err := NewSeeded(b[:])
	if err != nil {
		// Unreachable: the seed is never empty and HKDF-SHA256 can emit 44 bytes.
		panic(err)
	}
	return s
}

// Uint64 implements rand.Source.
func (s *Seeded) Uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
