package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// NewSource returns a PCG-backed generator for secret draws.
// A zero seed is replaced by one read from crypto/rand, so every process
// gets its own sequence unless a seed is pinned in configuration.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = randomSeed()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomSeed() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
