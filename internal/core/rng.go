package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It satisfies board.Source.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewSeed draws a non-zero seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, errors.Wrap(err, "[NewSeed] failed to read random seed")
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// IntN returns a random int in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}
