package sorts

import "github.com/lixenwraith/sorted/array"

// Merge sorts a by recursive top-down merging
func Merge(a *array.Store, step StepFunc) error {
	return MergeFunc[int](a, ordered[int], step)
}

// MergeFunc is a stable O(n log n) sort using copied halves as auxiliary storage.
// Every write during a merge highlights the write position.
func MergeFunc[E any](s Sequence[E], less func(a, b E) bool, step StepFunc) error {
	return mergeRange(s, less, orNop(step), 0, s.Len()-1)
}

// mergeRange sorts the inclusive range [l, r]
func mergeRange[E any](s Sequence[E], less func(a, b E) bool, step StepFunc, l, r int) error {
	if l >= r {
		return nil
	}
	mid := (l + r) / 2
	if err := mergeRange(s, less, step, l, mid); err != nil {
		return err
	}
	if err := mergeRange(s, less, step, mid+1, r); err != nil {
		return err
	}
	return mergeHalves(s, less, step, l, mid, r)
}

// mergeHalves merges sorted [l, m] and [m+1, r]
func mergeHalves[E any](s Sequence[E], less func(a, b E) bool, step StepFunc, l, m, r int) error {
	left := copyRange(s, l, m+1)
	right := copyRange(s, m+1, r+1)

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		// Ties take from the left half to keep the sort stable
		if !less(right[j], left[i]) {
			s.Set(k, left[i])
			i++
		} else {
			s.Set(k, right[j])
			j++
		}
		if err := step(k); err != nil {
			return err
		}
		k++
	}
	for ; i < len(left); i++ {
		s.Set(k, left[i])
		if err := step(k); err != nil {
			return err
		}
		k++
	}
	for ; j < len(right); j++ {
		s.Set(k, right[j])
		if err := step(k); err != nil {
			return err
		}
		k++
	}
	return nil
}

func copyRange[E any](s Sequence[E], from, to int) []E {
	out := make([]E, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, s.Get(i))
	}
	return out
}
