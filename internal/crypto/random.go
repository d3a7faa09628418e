package crypto

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source supplies uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSecureSource returns a Source backed by crypto/rand. It is safe for concurrent use.
func NewSecureSource() Source {
	return mrand.New(cryptoSource{})
}

// NewSeededSource returns a deterministic Source. It is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// cryptoSource adapts crypto/rand to math/rand/v2.Source.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error; it crashes the program instead.
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
