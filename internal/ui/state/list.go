package state

import "sort"

// Pair is a committed key/value entry as shown in the list.
type Pair struct {
	Key   string
	Value string
}

// List holds the view state of the pair listing: the filter, the cursor, and
// the viewport offset. It never mutates the editor pairs it displays.
type List struct {
	Items          []Pair
	Full           []Pair
	Filter         string
	FilterCursor   int
	Filtering      bool
	Cursor         int
	ViewportOffset int
}

// NewList constructs a List for the provided pairs.
func NewList(pairs map[string]string) *List {
	l := &List{}
	l.SetPairs(pairs)
	return l
}

// PairsFromMap returns the entries of m sorted by key.
func PairsFromMap(m map[string]string) []Pair {
	pairs := make([]Pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// SetPairs refreshes the entries while keeping the cursor on the same key
// when it survives the refresh.
func (l *List) SetPairs(pairs map[string]string) {
	selected, hadSelection := l.Selected()
	prevOffset := l.ViewportOffset
	l.Full = PairsFromMap(pairs)
	l.applyFilter()
	if hadSelection {
		l.SelectKey(selected.Key)
	}
	if len(l.Items) == 0 || prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// IndexOf returns the index of key among the visible items, or -1.
func (l *List) IndexOf(key string) int {
	for i, item := range l.Items {
		if item.Key == key {
			return i
		}
	}
	return -1
}

// SelectKey moves the cursor to key when it is visible.
func (l *List) SelectKey(key string) bool {
	idx := l.IndexOf(key)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

// Selected returns the pair under the cursor.
func (l *List) Selected() (Pair, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Pair{}, false
	}
	return l.Items[l.Cursor], true
}
