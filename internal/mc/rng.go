package mc

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// pathSeed derives the substream seed for one path index from the master
// seed via a splitmix64 finalizer, so consecutive indices land on
// well-separated PCG states.
func pathSeed(master uint64, pathIndex int) uint64 {
	z := master + uint64(pathIndex)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// entropySeed returns a non-reproducible master seed for simulators
// constructed without WithSeed.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (s *Simulator[P]) pathRand(pathIndex int) *rand.Rand {
	return rand.New(rand.NewSource(pathSeed(s.seed, pathIndex)))
}
