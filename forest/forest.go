// Package forest implements the height-tracking forest: a
// successor-delete structure that also acts as an oracle for
// locating the deepest live root in O(height), which the worst-case
// workload generator uses to evolve pathological compression chains.
package forest

// Forest maintains a dynamic forest over {0,...,n+1} with per-node
// height, a doubly linked circular list of all nodes sharing a height,
// and a doubly linked circular sibling list under each parent.
type Forest struct {
	parent []int64
	height []int64

	// next/prev link all nodes of identical height into one circular
	// list; rootsOfHeight[h] points to any member, or -1 if none.
	next []int64
	prev []int64

	// left/right link the children of a common parent into one
	// circular list; child[p] points to any member, or -1 if none.
	left  []int64
	right []int64
	child []int64

	rootsOfHeight []int64
	maxHeight     int64
	n             int64

	// retired marks indices that a prior Successor call has fully
	// path-compressed away: their parent points straight at the owning
	// root, but they no longer belong to any child or height list.
	retired []bool
}

// New allocates a Forest with capacity for universes up to maxN.
func New(maxN int64) *Forest {
	size := maxN + 2
	return &Forest{
		parent:        make([]int64, size),
		height:        make([]int64, size),
		next:          make([]int64, size),
		prev:          make([]int64, size),
		left:          make([]int64, size),
		right:         make([]int64, size),
		child:         make([]int64, size),
		rootsOfHeight: make([]int64, size),
		retired:       make([]bool, size),
	}
}

// Name returns the fixed display string for this structure.
func (f *Forest) Name() string {
	return "forest"
}

// IdempotentDelete reports that repeated Delete on the same index is
// safe: a second Delete finds the index as a non-root, unlinks it from
// wherever the first Delete (or a later compression) left it, and
// relinks it under i+1 without disturbing liveness.
func (f *Forest) IdempotentDelete() bool {
	return true
}

// Init resets every index to a singleton, childless root of height 0.
func (f *Forest) Init(n int64) {
	f.n = n
	for i := int64(0); i <= n+1; i++ {
		f.parent[i] = i
		f.height[i] = 0
		f.next[i] = i
		f.prev[i] = i
		f.left[i] = i
		f.right[i] = i
		f.child[i] = -1
		f.retired[i] = false
	}
	for h := int64(0); h <= n+1; h++ {
		f.rootsOfHeight[h] = -1
	}
	f.rootsOfHeight[0] = 0
	for i := int64(1); i <= n+1; i++ {
		f.spliceIntoHeightList(i, 0)
	}
	f.maxHeight = 0
}

// spliceIntoHeightList inserts i (already a singleton in its own
// next/prev list) into the height-h circular list.
func (f *Forest) spliceIntoHeightList(i, h int64) {
	head := f.rootsOfHeight[h]
	if head == -1 {
		f.rootsOfHeight[h] = i
		f.next[i] = i
		f.prev[i] = i
		return
	}
	tail := f.prev[head]
	f.next[tail] = i
	f.prev[i] = tail
	f.next[i] = head
	f.prev[head] = i
}

// removeFromHeightList splices i out of its current height-h list. A
// retired node is already a detached singleton; removing it again must
// not clobber the list head other members still hang off.
func (f *Forest) removeFromHeightList(i, h int64) {
	if f.next[i] == i {
		if f.rootsOfHeight[h] == i {
			f.rootsOfHeight[h] = -1
		}
	} else {
		f.next[f.prev[i]] = f.next[i]
		f.prev[f.next[i]] = f.prev[i]
		if f.rootsOfHeight[h] == i {
			f.rootsOfHeight[h] = f.next[i]
		}
	}
	f.next[i] = i
	f.prev[i] = i
}

// spliceIntoChildList prepends i to p's circular sibling list.
func (f *Forest) spliceIntoChildList(i, p int64) {
	head := f.child[p]
	if head == -1 {
		f.child[p] = i
		f.left[i] = i
		f.right[i] = i
		return
	}
	tail := f.left[head]
	f.right[tail] = i
	f.left[i] = tail
	f.right[i] = head
	f.left[head] = i
	f.child[p] = i
}

// removeFromChildList splices i out of its parent p's sibling list. As
// with the height lists, a detached singleton must not wipe a head it
// no longer owns.
func (f *Forest) removeFromChildList(i, p int64) {
	if f.right[i] == i {
		if f.child[p] == i {
			f.child[p] = -1
		}
	} else {
		f.right[f.left[i]] = f.right[i]
		f.left[f.right[i]] = f.left[i]
		if f.child[p] == i {
			f.child[p] = f.right[i]
		}
	}
	f.left[i] = i
	f.right[i] = i
}

// link prepends i to j's child list and sets parent[i] := j.
// Preconditions: parent[i] = i (i is a root), j > i.
func (f *Forest) link(i, j int64) {
	f.parent[i] = j
	f.spliceIntoChildList(i, j)
}

// unlink removes i from its parent's child list and restores i to a
// root with singleton sibling/child lists. Must not be called on a
// root.
func (f *Forest) unlink(i int64) {
	p := f.parent[i]
	f.removeFromChildList(i, p)
	f.parent[i] = i
}

// fixHeight removes i from its current equal-height list, recomputes
// its height from its children, and splices it into the new list.
func (f *Forest) fixHeight(i int64) {
	oldH := f.height[i]
	f.removeFromHeightList(i, oldH)

	h := int64(0)
	if f.child[i] != -1 {
		c := f.child[i]
		maxChildHeight := int64(-1)
		for {
			if f.height[c] > maxChildHeight {
				maxChildHeight = f.height[c]
			}
			c = f.right[c]
			if c == f.child[i] {
				break
			}
		}
		h = maxChildHeight + 1
	}

	f.height[i] = h
	f.spliceIntoHeightList(i, h)
	if h > f.maxHeight {
		f.maxHeight = h
	}
}

// ancestorsOf returns i and every strict ancestor of i, root last.
func (f *Forest) ancestorsOf(i int64) []int64 {
	path := []int64{i}
	for f.parent[i] != i {
		i = f.parent[i]
		path = append(path, i)
	}
	return path
}

// Delete removes i from the live set: if i is not a root, it is
// unlinked and every ancestor's height is refreshed; i is then linked
// under i+1 and its new ancestors' heights refreshed. max_height is
// trimmed afterward if its list emptied out.
func (f *Forest) Delete(i int64) {
	if f.retired[i] {
		// A duplicate delete can reach a node a prior Successor retired.
		// A retired node sits in no child or height list, so detaching it
		// is just forgetting its root shortcut; the relink below makes it
		// a tree-structural node again.
		f.retired[i] = false
		f.parent[i] = i
	} else if f.parent[i] != i {
		ancestors := f.ancestorsOf(i)
		f.unlink(i)
		for _, j := range ancestors[1:] {
			f.fixHeight(j)
		}
	}

	f.reattach(i + 1)
	f.link(i, i+1)
	for _, j := range f.ancestorsOf(i) {
		f.fixHeight(j)
	}

	f.trimMaxHeight()
}

// reattach restores j, and any retired ancestors above it, to their
// parents' child lists. Linking a node under a retired parent without
// this would hand children to a node no height or child list knows
// about; the caller's fixHeight walk re-derives the chain's heights
// afterward.
func (f *Forest) reattach(j int64) {
	var chain []int64
	for f.retired[j] {
		chain = append(chain, j)
		j = f.parent[j]
	}
	for k := len(chain) - 1; k >= 0; k-- {
		c := chain[k]
		f.retired[c] = false
		f.spliceIntoChildList(c, f.parent[c])
	}
}

// trimMaxHeight lowers max_height while its list is empty.
func (f *Forest) trimMaxHeight() {
	for f.maxHeight > 0 && f.rootsOfHeight[f.maxHeight] == -1 {
		f.maxHeight--
	}
}

// retire fully compresses j's parent pointer to r: j is removed from
// whatever child and height list currently holds it, and its parent
// becomes r directly. retire does not reinsert j anywhere: it stays a
// find-shortcut for any future query that still names it, until a
// later Delete of j (or reattach, when a node is linked under j)
// returns it to the child and height lists. Any of
// j's own children are promoted to r directly first, so a branch
// hanging off an already-deleted node stays reachable from the root
// for the deepest-node oracle.
func (f *Forest) retire(j, r int64) {
	if f.retired[j] {
		// Already detached; just refresh the shortcut, since the root it
		// pointed at may itself have been deleted since.
		f.parent[j] = r
		return
	}
	for f.child[j] != -1 {
		c := f.child[j]
		f.removeFromChildList(c, j)
		f.parent[c] = r
		f.spliceIntoChildList(c, r)
	}
	f.removeFromChildList(j, f.parent[j])
	f.removeFromHeightList(j, f.height[j])
	f.parent[j] = r
	f.retired[j] = true
}

// Successor performs two-pass path compression: find the root, then
// retire every original ancestor on the path directly to it, so later
// queries reach the root in one hop.
func (f *Forest) Successor(i int64) int64 {
	ancestors := f.ancestorsOf(i)
	r := ancestors[len(ancestors)-1]

	for _, j := range ancestors[:len(ancestors)-1] {
		f.retire(j, r)
	}
	f.fixHeight(r)
	f.trimMaxHeight()

	return r
}

// DeepestNode picks any member of rootsOfHeight[maxHeight] and
// descends via a child whose height equals the current level minus
// one, until height 0 is reached. The zero sentinel is never linked
// under anything, so it sits on the height-0 list forever; when the
// whole forest is flat it is skipped, since 0 encodes the stream
// terminator and is useless as a query target.
func (f *Forest) DeepestNode() int64 {
	node := f.rootsOfHeight[f.maxHeight]
	if node == 0 {
		node = f.next[node]
	}
	h := f.maxHeight
	for h > 0 {
		c := f.child[node]
		for f.height[c] != h-1 {
			c = f.right[c]
		}
		node = c
		h--
	}
	return node
}

// MaxHeight returns the current tallest height with a non-empty
// roots-of-height list.
func (f *Forest) MaxHeight() int64 {
	return f.maxHeight
}

// RootsOfHeight returns the circular-list head at height h, or -1 if
// no node currently has that height.
func (f *Forest) RootsOfHeight(h int64) int64 {
	return f.rootsOfHeight[h]
}

// HeightListMembers returns every index currently on height h's
// circular list, for invariant checking.
func (f *Forest) HeightListMembers(h int64) []int64 {
	head := f.rootsOfHeight[h]
	if head == -1 {
		return nil
	}
	members := []int64{head}
	for c := f.next[head]; c != head; c = f.next[c] {
		members = append(members, c)
	}
	return members
}
