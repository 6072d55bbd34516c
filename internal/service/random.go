package service

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a goroutine-safe source seeded from the clock.
func NewRandomSource() RandomSource {
	return &lockedSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// sampleIDs draws min(k, len(ids)) distinct ids uniformly without
// replacement. The input slice is not modified.
func sampleIDs(r RandomSource, ids []uint, k int) []uint {
	pool := make([]uint, len(ids))
	copy(pool, ids)
	n := len(pool)
	if k >= n {
		return pool
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// shuffleIDs permutes ids in place, every ordering equally likely.
func shuffleIDs(r RandomSource, ids []uint) {
	for i := len(ids) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
