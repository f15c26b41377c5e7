package sorts

import "github.com/lixenwraith/sorted/array"

// Selection sorts a by repeatedly selecting the minimum of the unsorted suffix
func Selection(a *array.Store, step StepFunc) error {
	return SelectionFunc[int](a, ordered[int], step)
}

// SelectionFunc is an unstable O(n²) sort. Each comparison highlights the running
// minimum and the scan index.
func SelectionFunc[E any](s Sequence[E], less func(a, b E) bool, step StepFunc) error {
	step = orNop(step)
	n := s.Len()
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if err := step(minIdx, j); err != nil {
				return err
			}
			if less(s.Get(j), s.Get(minIdx)) {
				minIdx = j
			}
		}
		s.Swap(i, minIdx)
	}
	return nil
}
