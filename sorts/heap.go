package sorts

import "github.com/lixenwraith/sorted/array"

// Heap sorts a by building a max-heap and extracting the maximum repeatedly
func Heap(a *array.Store, step StepFunc) error {
	return HeapFunc[int](a, ordered[int], step)
}

// HeapFunc is an unstable O(n log n) sort. Each sift-down swap highlights the parent
// and the child it was exchanged with.
func HeapFunc[E any](s Sequence[E], less func(a, b E) bool, step StepFunc) error {
	step = orNop(step)
	n := s.Len()

	for i := n/2 - 1; i >= 0; i-- {
		if err := siftDown(s, less, step, n, i); err != nil {
			return err
		}
	}

	for i := n - 1; i > 0; i-- {
		s.Swap(0, i)
		if err := siftDown(s, less, step, i, 0); err != nil {
			return err
		}
	}
	return nil
}

// siftDown restores the max-heap property for the subtree at i within s[:n]
func siftDown[E any](s Sequence[E], less func(a, b E) bool, step StepFunc, n, i int) error {
	largest := i
	l := 2*i + 1
	r := 2*i + 2

	if l < n && less(s.Get(largest), s.Get(l)) {
		largest = l
	}
	if r < n && less(s.Get(largest), s.Get(r)) {
		largest = r
	}
	if largest == i {
		return nil
	}

	s.Swap(i, largest)
	if err := step(i, largest); err != nil {
		return err
	}
	return siftDown(s, less, step, n, largest)
}
