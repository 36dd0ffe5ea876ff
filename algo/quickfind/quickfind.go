// Package quickfind implements the weighted quick-find successor-delete
// structure: O(1) successor via a per-index root pointer, delete by
// merging the range of i with the range of i+1.
package quickfind

// Structure holds, per index, the root of its contiguous range
// (root), the range size when the index is itself a root (weight), and
// the successor of the whole range (succ), meaningful only at roots.
type Structure struct {
	root   []int64
	weight []int64
	succ   []int64
	n      int64
}

// New allocates a Structure with capacity for universes up to maxN.
func New(maxN int64) *Structure {
	return &Structure{
		root:   make([]int64, maxN+2),
		weight: make([]int64, maxN+2),
		succ:   make([]int64, maxN+2),
	}
}

// Name returns the fixed display string for this structure.
func (s *Structure) Name() string {
	return "quick-find"
}

// IdempotentDelete reports that Delete is safe to call more than once
// on the same index: the leading short-circuit check makes it so.
func (s *Structure) IdempotentDelete() bool {
	return true
}

// Init resets every index to be its own singleton root.
func (s *Structure) Init(n int64) {
	s.n = n
	for i := int64(0); i <= n+1; i++ {
		s.root[i] = i
		s.weight[i] = 1
		s.succ[i] = i
	}
}

// Successor returns succ[root[i]].
func (s *Structure) Successor(i int64) int64 {
	return s.succ[s.root[i]]
}

// Delete merges the contiguous range containing i with the range
// containing i+1, short-circuiting if i is already deleted.
func (s *Structure) Delete(i int64) {
	r1 := s.root[i]
	if s.succ[r1] != i {
		return
	}
	r2 := s.root[i+1]

	if s.weight[r1] < s.weight[r2] {
		// r1's range (ending at i) is strictly smaller: scan leftwards
		// from i, absorbing it into r2.
		for j := i; s.root[j] == r1; j-- {
			s.root[j] = r2
			if j == 0 {
				break
			}
		}
		s.weight[r2] += s.weight[r1]
		// succ[r2] already holds the successor of the merged range.
	} else {
		// r2's range is the smaller or tied range: scan rightwards from
		// i+1, absorbing it into r1.
		for j := i + 1; s.root[j] == r2; j++ {
			s.root[j] = r1
			if j == s.n+1 {
				break
			}
		}
		s.weight[r1] += s.weight[r2]
		s.succ[r1] = s.succ[r2]
	}
}
