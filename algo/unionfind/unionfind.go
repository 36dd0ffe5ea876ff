// Package unionfind implements the classical weighted-union,
// path-compressed successor-delete structure: union by weight plus
// full path compression on find, adapted from dominator-tree
// bookkeeping to successor/delete semantics.
package unionfind

// Structure holds, per index, the union-find parent, the subtree size
// at roots (weight), and the successor of the whole tree (succ),
// meaningful only at roots.
type Structure struct {
	parent []int64
	weight []int64
	succ   []int64
	n      int64
}

// New allocates a Structure with capacity for universes up to maxN.
func New(maxN int64) *Structure {
	return &Structure{
		parent: make([]int64, maxN+2),
		weight: make([]int64, maxN+2),
		succ:   make([]int64, maxN+2),
	}
}

// Name returns the fixed display string for this structure.
func (s *Structure) Name() string {
	return "union-find"
}

// IdempotentDelete reports that Delete is safe to call more than once:
// union is a no-op once i and i+1 already share a root.
func (s *Structure) IdempotentDelete() bool {
	return true
}

// Init resets every index to be its own singleton tree.
func (s *Structure) Init(n int64) {
	s.n = n
	for i := int64(0); i <= n+1; i++ {
		s.parent[i] = i
		s.weight[i] = 1
		s.succ[i] = i
	}
}

// find implements classical two-pass path compression: a first pass
// locates the root, a second rewalks the path setting every node's
// parent directly to that root.
func (s *Structure) find(i int64) int64 {
	r := i
	for s.parent[r] != r {
		r = s.parent[r]
	}
	for s.parent[i] != r {
		next := s.parent[i]
		s.parent[i] = r
		i = next
	}
	return r
}

// union merges the trees rooted by i and j by weight. The loser's succ
// is propagated to the winner only when j is the losing side, because
// j = i+1 lies to the right and its succ is the one relevant to the
// merged range.
func (s *Structure) union(i, j int64) {
	r1, r2 := s.find(i), s.find(j)
	if r1 == r2 {
		return
	}
	if s.weight[r1] >= s.weight[r2] {
		s.parent[r2] = r1
		s.weight[r1] += s.weight[r2]
		s.succ[r1] = s.succ[r2]
	} else {
		s.parent[r1] = r2
		s.weight[r2] += s.weight[r1]
	}
}

// Delete removes i from the live set via union(i, i+1).
func (s *Structure) Delete(i int64) {
	s.union(i, i+1)
}

// Successor returns succ[find(i)].
func (s *Structure) Successor(i int64) int64 {
	return s.succ[s.find(i)]
}
