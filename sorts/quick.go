package sorts

import "github.com/lixenwraith/sorted/array"

// Quick sorts a by recursive Lomuto partitioning around the last element
func Quick(a *array.Store, step StepFunc) error {
	return QuickFunc[int](a, ordered[int], step)
}

// QuickFunc is an unstable in-place sort, O(n log n) on average and O(n²) on sorted
// input. Every partition iteration highlights the scan index, swap or not.
func QuickFunc[E any](s Sequence[E], less func(a, b E) bool, step StepFunc) error {
	return quickRange(s, less, orNop(step), 0, s.Len()-1)
}

func quickRange[E any](s Sequence[E], less func(a, b E) bool, step StepFunc, low, high int) error {
	if low >= high {
		return nil
	}
	pi, err := partition(s, less, step, low, high)
	if err != nil {
		return err
	}
	if err := quickRange(s, less, step, low, pi-1); err != nil {
		return err
	}
	return quickRange(s, less, step, pi+1, high)
}

// partition places the pivot s[high] at its final index and returns that index
func partition[E any](s Sequence[E], less func(a, b E) bool, step StepFunc, low, high int) (int, error) {
	pivot := s.Get(high)
	i := low - 1
	for j := low; j < high; j++ {
		if less(s.Get(j), pivot) {
			i++
			s.Swap(i, j)
		}
		if err := step(j); err != nil {
			return 0, err
		}
	}
	s.Swap(i+1, high)
	return i + 1, nil
}
