package sorts

import (
	"github.com/samber/lo"

	"github.com/lixenwraith/sorted/array"
)

// ID identifies an algorithm; values start at 1 to match the keyboard shortcuts
type ID int

const (
	IDBubble ID = iota + 1
	IDSelection
	IDInsertion
	IDMerge
	IDQuick
	IDHeap
)

// Algorithm describes one selectable sort
type Algorithm struct {
	ID     ID
	Name   string // button caption
	Label  string // header shown while running
	Stable bool
	Run    func(a *array.Store, step StepFunc) error
}

var algorithms = []Algorithm{
	{ID: IDBubble, Name: "Bubble", Label: "Bubble Sort - O(n²)", Stable: true, Run: Bubble},
	{ID: IDSelection, Name: "Selection", Label: "Selection Sort - O(n²)", Run: Selection},
	{ID: IDInsertion, Name: "Insertion", Label: "Insertion Sort - O(n²)", Stable: true, Run: Insertion},
	{ID: IDMerge, Name: "Merge", Label: "Merge Sort - O(n log n)", Stable: true, Run: Merge},
	{ID: IDQuick, Name: "Quick", Label: "Quick Sort - O(n log n avg)", Run: Quick},
	{ID: IDHeap, Name: "Heap", Label: "Heap Sort - O(n log n)", Run: Heap},
}

// All returns the algorithms in button order
func All() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// Lookup returns the algorithm with the given id
func Lookup(id ID) (Algorithm, bool) {
	return lo.Find(algorithms, func(a Algorithm) bool {
		return a.ID == id
	})
}

// Key returns the keyboard shortcut for the algorithm
func (a Algorithm) Key() rune {
	return rune('0' + int(a.ID))
}
