// Package entropy provides the randomness sources behind randomized story
// branches. Every source yields uniform float64 values in [0, 1).
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"
	mrand "math/rand/v2"
)

// Source produces uniform values in [0, 1).
type Source interface {
	Float() float64
}

// Func adapts a plain function to Source.
type Func func() float64

// Float calls f.
func (f Func) Float() float64 { return f() }

// Crypto draws from crypto/rand. It is the production source when no seed
// is configured.
type Crypto struct{}

// Float returns a uniform value from crypto/rand.
func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

// Seeded is a deterministic PCG source. Two Seeded sources built from the
// same seed yield the same sequence.
type Seeded struct {
	rng *mrand.Rand
}

// NewSeeded creates a deterministic source from seed.
func NewSeeded(seed int64) *Seeded {
	// Non-cryptographic PRNG is intentional for reproducible runs.
	// #nosec G404
	return &Seeded{rng: mrand.New(mrand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

// Float returns the next value in the sequence.
func (s *Seeded) Float() float64 {
	return s.rng.Float64()
}

// New returns a Seeded source for a non-zero seed and Crypto otherwise.
func New(seed int64) Source {
	if seed == 0 {
		return Crypto{}
	}
	slog.Debug("using seeded entropy", "seed", seed)
	return NewSeeded(seed)
}

// Sequence replays fixed values in order, then repeats the last one.
// Intended for pinning randomized branches in tests and replays.
type Sequence struct {
	values []float64
	next   int
	drawn  int
}

// NewSequence creates a replaying source. It panics on an empty list or on
// a value outside [0, 1).
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("entropy: empty sequence")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic(fmt.Sprintf("entropy: value %v outside [0, 1)", v))
		}
	}
	return &Sequence{values: values}
}

// Float returns the next fixed value.
func (s *Sequence) Float() float64 {
	v := s.values[s.next]
	s.drawn++
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}

// Drawn returns how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.drawn
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// cryptoRandFloat generates a random float64 using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
