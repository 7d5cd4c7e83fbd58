package findbar

import "github.com/emirpasic/gods/trees/redblacktree"

// MatchSet is the ordered set of line indices found in one find session.
type MatchSet struct {
	tree *redblacktree.Tree
}

// NewMatchSet returns an empty set.
func NewMatchSet() *MatchSet {
	return &MatchSet{tree: redblacktree.NewWithIntComparator()}
}

// Add records line. Adding a line twice is harmless.
func (m *MatchSet) Add(line int) {
	m.tree.Put(line, struct{}{})
}

// Contains reports whether line was recorded.
func (m *MatchSet) Contains(line int) bool {
	_, ok := m.tree.Get(line)
	return ok
}

// Len returns the number of recorded lines.
func (m *MatchSet) Len() int {
	return m.tree.Size()
}

// Clear removes every line.
func (m *MatchSet) Clear() {
	m.tree.Clear()
}

// Lines returns the recorded lines in ascending order.
func (m *MatchSet) Lines() []int {
	keys := m.tree.Keys()
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.(int))
	}
	return out
}

// Below returns the greatest recorded line strictly less than line.
func (m *MatchSet) Below(line int) (int, bool) {
	node, ok := m.tree.Floor(line - 1)
	if !ok {
		return 0, false
	}
	return node.Key.(int), true
}

// Above returns the smallest recorded line strictly greater than line.
func (m *MatchSet) Above(line int) (int, bool) {
	node, ok := m.tree.Ceiling(line + 1)
	if !ok {
		return 0, false
	}
	return node.Key.(int), true
}

// Within returns the recorded lines in [first, last], ascending.
func (m *MatchSet) Within(first, last int) []int {
	var out []int
	for line, ok := m.Above(first - 1); ok && line <= last; line, ok = m.Above(line) {
		out = append(out, line)
	}
	return out
}
