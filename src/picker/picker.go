// Package picker is the single source of randomness: uniform list picks and
// probability draws over one process-wide generator.
package picker

import (
	"math/rand/v2"
	"sync"
)

// The whole program draws from one process-wide generator so that tests can
// make every selection axis deterministic with a single Seed call.
var (
	mu  sync.Mutex
	rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
)

// Seed replaces the process-wide generator with a deterministic one.
func Seed(seed uint64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewPCG(seed, seed))
}

// Pick returns a uniformly chosen element of items. The second return is
// false when items is empty.
func Pick[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[Intn(len(items))], true
}

// Intn returns a uniform index in [0, n).
func Intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.IntN(n)
}

// Chance reports whether a uniform draw in [0,1) fell below p.
func Chance(p float64) bool {
	mu.Lock()
	defer mu.Unlock()
	return rng.Float64() < p
}
