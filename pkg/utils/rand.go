package utils

import (
	"math/rand"
	"sync"
)

// Shuffler abstracts the random source used by candidate truncation and
// emergency alternatives, so tests can pin a seed and assert exact output.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type lockedShuffler struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewShuffler returns a Shuffler safe for use from concurrent handlers.
func NewShuffler(seed int64) Shuffler {
	return &lockedShuffler{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}
