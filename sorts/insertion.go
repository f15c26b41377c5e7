package sorts

import "github.com/lixenwraith/sorted/array"

// Insertion sorts a by shifting larger elements right of each key
func Insertion(a *array.Store, step StepFunc) error {
	return InsertionFunc[int](a, ordered[int], step)
}

// InsertionFunc is a stable O(n²) sort. Each shift highlights the index the value
// was shifted from.
func InsertionFunc[E any](s Sequence[E], less func(a, b E) bool, step StepFunc) error {
	step = orNop(step)
	for i := 1; i < s.Len(); i++ {
		key := s.Get(i)
		j := i - 1
		for j >= 0 && less(key, s.Get(j)) {
			s.Set(j+1, s.Get(j))
			if err := step(j); err != nil {
				return err
			}
			j--
		}
		s.Set(j+1, key)
	}
	return nil
}
