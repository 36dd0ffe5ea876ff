package microset

import (
	"github.com/succdel/bench/algo"
	"github.com/succdel/bench/algo/arrayparent"
	"github.com/succdel/bench/algo/quickfind"
	"github.com/succdel/bench/algo/unionfind"
)

// QuickFindBuilder returns a Builder whose composites bind the macro
// structure to weighted quick-find.
func QuickFindBuilder(maxN int64) *Builder {
	return NewBuilder("quick-find", func(maxBuckets int64) algo.Structure {
		return quickfind.New(maxBuckets)
	}, maxN)
}

// UnionFindBuilder returns a Builder whose composites bind the macro
// structure to union-find with path compression.
func UnionFindBuilder(maxN int64) *Builder {
	return NewBuilder("union-find", func(maxBuckets int64) algo.Structure {
		return unionfind.New(maxBuckets)
	}, maxN)
}

// ArrayParentBuilder returns a Builder whose composites bind the macro
// structure to the array-parent two-pass variant.
func ArrayParentBuilder(maxN int64) *Builder {
	return NewBuilder("array-parent-2pass", func(maxBuckets int64) algo.Structure {
		return arrayparent.New(arrayparent.TwoPass, maxBuckets)
	}, maxN)
}
