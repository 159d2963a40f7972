// SPDX-License-Identifier: MIT

package randsrc

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/crypto/sha3"
)

// Factory produces a fresh generator for a single generation call.
// Implementations must be safe for concurrent use; the generators they
// return are not.
type Factory func() *rand.Rand

// shakeDomain separates our SHAKE256 streams from any other use of the seed.
const shakeDomain = "lvphrase/randsrc/v1"

// shakeBlock is how many XOF bytes are buffered per read.
const shakeBlock = 256

// Secure returns a ChaCha8 generator keyed with 32 bytes from crypto/rand.
// Panics if the operating system randomness source is unavailable.
func Secure() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("randsrc: crypto/rand.Read failed: " + err.Error())
	}

	return rand.New(rand.NewChaCha8(seed))
}

// Default returns the factory used when a caller does not pick one: Secure.
func Default() Factory { return Secure }

// shakeSource is a rand.Source reading 64-bit words from a SHAKE256 stream.
type shakeSource struct {
	xof sha3.ShakeHash
	buf [shakeBlock]byte
	off int
}

// Uint64 implements rand.Source.
func (s *shakeSource) Uint64() uint64 {
	if s.off+8 > len(s.buf) {
		// ShakeHash.Read never fails.
		_, _ = s.xof.Read(s.buf[:])
		s.off = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8

	return v
}

// NewShake returns a deterministic generator keyed by seed. The same seed
// always yields the same sequence.
func NewShake(seed []byte) *rand.Rand {
	xof := sha3.NewShake256()
	_, _ = xof.Write([]byte(shakeDomain))
	_, _ = xof.Write([]byte{0})
	_, _ = xof.Write(seed)

	// off past the end forces the first Uint64 to fill the buffer.
	return rand.New(&shakeSource{xof: xof, off: shakeBlock})
}

// Seeded returns a deterministic Factory. Its i-th generator is keyed by
// seed followed by the big-endian call counter i, so successive calls differ
// while two factories built from the same seed replay the same sequence.
// The factory is safe for concurrent use.
func Seeded(seed []byte) Factory {
	key := append([]byte(nil), seed...)
	var calls atomic.Uint64

	return func() *rand.Rand {
		i := calls.Add(1) - 1
		buf := make([]byte, len(key)+8)
		copy(buf, key)
		binary.BigEndian.PutUint64(buf[len(key):], i)

		return NewShake(buf)
	}
}
