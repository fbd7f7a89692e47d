// Package random provides seed generation and seeded generators.
//
// Games take a *rand.Rand so a fixed --seed replays the same shuffles,
// throws and AI picks.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG-backed generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FromSeedOrEntropy returns a generator for seed, or a freshly seeded one
// when seed is zero. The seed actually used is returned for logging.
func FromSeedOrEntropy(seed uint64) (*rand.Rand, uint64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	return New(seed), seed, nil
}

// Fresh returns an entropy-seeded generator for callers that were not handed
// one. crypto/rand does not fail on supported platforms, so neither does
// Fresh.
func Fresh() *rand.Rand {
	r, _, err := FromSeedOrEntropy(0)
	if err != nil {
		panic(err)
	}
	return r
}
