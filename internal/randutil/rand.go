// Package randutil constructs reproducible random sources.
//
// The shoe, the NPC policies and the NPC betting all draw from a *rand.Rand
// owned by the table rather than the global source, so a fixed seed replays
// an identical session.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	randv2 "math/rand/v2"
)

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's PCG
// wants two 64-bit words, so the seed is stretched through a splitmix-style
// mixer to decorrelate nearby seeds.
func New(seed int64) *randv2.Rand {
	u := uint64(seed)
	return randv2.New(randv2.NewPCG(mix(u), mix(u^0x9e3779b97f4a7c15)))
}

// NewEntropy returns a *rand.Rand seeded from the OS entropy source, for
// normal play where reproducibility is not wanted.
func NewEntropy() *randv2.Rand {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Entropy read failing is effectively impossible; degrade to a
		// fixed seed rather than aborting the game.
		return New(0)
	}
	return New(int64(binary.LittleEndian.Uint64(buf[:])))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
