package sorts

import "github.com/lixenwraith/sorted/array"

// Bubble sorts a with adjacent compare-swaps
func Bubble(a *array.Store, step StepFunc) error {
	return BubbleFunc[int](a, ordered[int], step)
}

// BubbleFunc is a stable O(n²) sort. Each comparison highlights the adjacent pair.
func BubbleFunc[E any](s Sequence[E], less func(a, b E) bool, step StepFunc) error {
	step = orNop(step)
	n := s.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := step(j, j+1); err != nil {
				return err
			}
			if less(s.Get(j+1), s.Get(j)) {
				s.Swap(j, j+1)
			}
		}
	}
	return nil
}
