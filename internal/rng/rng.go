package rng

import (
	"math/rand"
	"sync"
)

// Generator provides a simple random number
// *math/rand.Rand satisfies this interface
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a generator seeded with seed
func New(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Locked wraps a Generator so it can be shared between goroutines
type Locked struct {
	g    Generator
	lock sync.Mutex
}

// NewLocked returns a Locked generator
func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

// Intn will return a random number up to but not including n
func (l *Locked) Intn(n int) int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.g.Intn(n)
}
