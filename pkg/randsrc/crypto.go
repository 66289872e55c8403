package randsrc

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

type cryptoSource struct{}

// Crypto returns a source backed by crypto/rand.
func Crypto() rand.Source {
	return cryptoSource{}
}

// Uint64 implements rand.Source. crypto/rand.Read does not return errors on
// supported platforms since Go 1.24.
func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
