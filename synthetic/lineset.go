package synthetic

import (
	"sort"
	"sync"
)

// LineSet is a set of source line numbers. Insertion order is irrelevant
// and duplicates collapse. It is safe for concurrent use, so trackers
// running over different methods may share one set.
type LineSet struct {
	mu    sync.Mutex
	lines map[int]struct{}
}

// NewLineSet creates an empty LineSet.
func NewLineSet() *LineSet {
	return &LineSet{lines: make(map[int]struct{})}
}

// Add inserts a line number into the set.
func (s *LineSet) Add(line int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[line] = struct{}{}
}

// Contains reports whether the set holds the given line number.
func (s *LineSet) Contains(line int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lines[line]
	return ok
}

// Len returns the number of distinct line numbers in the set.
func (s *LineSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Lines returns the distinct line numbers in ascending order.
func (s *LineSet) Lines() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]int, 0, len(s.lines))
	for line := range s.lines {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}
