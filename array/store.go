// Package array holds the bar values being visualized.
package array

import (
	"math/rand/v2"
	"slices"
)

// Store is an ordered sequence of bar heights.
// Length is fixed between calls to Generate; sorts only Swap or Set.
type Store struct {
	values []int
	rng    *rand.Rand
}

// Option configures a Store
type Option func(*Store)

// WithRand sets the random source used by Generate
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rng = r
	}
}

// WithSeed makes generation deterministic
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromValues creates a store holding a copy of values
func FromValues(values []int, opts ...Option) *Store {
	s := New(opts...)
	s.values = slices.Clone(values)
	return s
}

// Generate replaces the contents with n uniform random values in [lo, hi]
func (s *Store) Generate(n, lo, hi int) {
	n = max(n, 0)
	if lo > hi {
		lo, hi = hi, lo
	}

	values := make([]int, n)
	span := hi - lo + 1
	for i := range values {
		values[i] = lo + s.intN(span)
	}
	s.values = values
}

func (s *Store) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Len returns the number of values
func (s *Store) Len() int {
	return len(s.values)
}

// Get returns the value at i
func (s *Store) Get(i int) int {
	return s.values[i]
}

// Set overwrites the value at i
func (s *Store) Set(i, v int) {
	s.values[i] = v
}

// Swap exchanges the values at i and j
func (s *Store) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Values returns the backing slice for read-only use by renderers
func (s *Store) Values() []int {
	return s.values
}

// Snapshot returns a copy of the current values
func (s *Store) Snapshot() []int {
	return slices.Clone(s.values)
}

// Max returns the largest value, or 0 for an empty store
func (s *Store) Max() int {
	if len(s.values) == 0 {
		return 0
	}
	return slices.Max(s.values)
}

// IsSorted reports whether values are in non-decreasing order
func (s *Store) IsSorted() bool {
	return slices.IsSorted(s.values)
}
