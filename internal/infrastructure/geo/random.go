package geo

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the pseudo-random source behind every fallback value.
// Tests pass a fixed seed to get reproducible output.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom returns a goroutine-safe source. Seed 0 seeds from the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}
