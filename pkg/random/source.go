package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the simulators draw from.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// LockedSource serialises access to a *rand.Rand so one source can be shared
// by concurrent callers.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a LockedSource seeded with seed. A zero seed is replaced with
// the current time so production callers get a fresh sequence.
func New(seed int64) *LockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Scripted replays fixed values, cycling when exhausted. It lets tests pin
// the exact outcome of every draw.
type Scripted struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewScripted returns a Scripted source that yields floats in order from
// Float64. Intn yields 0 unless WithInts is used.
func NewScripted(floats ...float64) *Scripted {
	return &Scripted{floats: floats}
}

// WithInts sets the values returned by Intn. Each is reduced modulo n.
func (s *Scripted) WithInts(ints ...int) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = ints
	return s
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}
