package app

import "github.com/lixenwraith/sorted/sorts"

// Phase is the sort state machine position
type Phase int

const (
	Idle Phase = iota
	Sorting
)

func (p Phase) String() string {
	if p == Sorting {
		return "sorting"
	}
	return "idle"
}

// State is Idle, or Sorting with the running algorithm
type State struct {
	Phase     Phase
	Algorithm sorts.Algorithm
}

// Sorting reports whether a sort is in progress
func (s State) Sorting() bool {
	return s.Phase == Sorting
}
