// Package sorts implements the visualized comparison sorts.
//
// Every algorithm mutates its Sequence in place and calls a StepFunc after each
// comparison or write it wants rendered. A non-nil error from the StepFunc stops
// the sort immediately and is returned unchanged from every recursion level.
package sorts

import (
	"cmp"
	"errors"
)

// ErrAborted is returned by a StepFunc to stop the running sort
var ErrAborted = errors.New("sort aborted")

// StepFunc is invoked after each visualized step with the indices involved
type StepFunc func(highlight ...int) error

// Sequence is mutable indexed storage a sort operates on
type Sequence[E any] interface {
	Len() int
	Get(i int) E
	Set(i int, v E)
	Swap(i, j int)
}

// Func sorts s in place using less, emitting steps through step
type Func[E any] func(s Sequence[E], less func(a, b E) bool, step StepFunc) error

func ordered[E cmp.Ordered](a, b E) bool {
	return a < b
}

// nopStep is used when no StepFunc is supplied
func nopStep(...int) error {
	return nil
}

func orNop(step StepFunc) StepFunc {
	if step == nil {
		return nopStep
	}
	return step
}
