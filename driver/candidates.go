package driver

import (
	"github.com/succdel/bench/algo"
	"github.com/succdel/bench/algo/arrayparent"
	"github.com/succdel/bench/algo/microset"
	"github.com/succdel/bench/algo/quickfind"
	"github.com/succdel/bench/algo/unionfind"
	"github.com/succdel/bench/forest"
)

// candidateSpec names one structure family under test and how to build
// a fresh instance of it at a given capacity. skipQueryOneAbove marks
// the two variants exempted from the query_one workload once n exceeds
// the configured threshold (array-parent-naive is too slow;
// array-parent-recursive would overflow the call stack).
type candidateSpec struct {
	name              string
	build             func(maxN int64) algo.Structure
	skipQueryOneAbove bool
}

// candidateSpecs enumerates every structure the driver compares: the
// five array-parent variants, weighted quick-find, union-find with
// path compression, the three micro-set macro bindings, and the
// height-tracking forest used both as an oracle and as a structure
// under test in its own right.
func candidateSpecs() []candidateSpec {
	return []candidateSpec{
		{name: "array-parent-naive", skipQueryOneAbove: true,
			build: func(maxN int64) algo.Structure { return arrayparent.New(arrayparent.Naive, maxN) }},
		{name: "array-parent-recursive", skipQueryOneAbove: true,
			build: func(maxN int64) algo.Structure { return arrayparent.New(arrayparent.Recursive, maxN) }},
		{name: "array-parent-2pass",
			build: func(maxN int64) algo.Structure { return arrayparent.New(arrayparent.TwoPass, maxN) }},
		{name: "array-parent-2pass-checked",
			build: func(maxN int64) algo.Structure { return arrayparent.New(arrayparent.TwoPassChecked, maxN) }},
		{name: "array-parent-halving",
			build: func(maxN int64) algo.Structure { return arrayparent.New(arrayparent.Halving, maxN) }},
		{name: "quick-find",
			build: func(maxN int64) algo.Structure { return quickfind.New(maxN) }},
		{name: "union-find",
			build: func(maxN int64) algo.Structure { return unionfind.New(maxN) }},
		{name: "microset-quick-find",
			build: func(maxN int64) algo.Structure { return microset.QuickFindBuilder(maxN).Build() }},
		{name: "microset-union-find",
			build: func(maxN int64) algo.Structure { return microset.UnionFindBuilder(maxN).Build() }},
		{name: "microset-array-parent-2pass",
			build: func(maxN int64) algo.Structure { return microset.ArrayParentBuilder(maxN).Build() }},
		{name: "forest",
			build: func(maxN int64) algo.Structure { return forest.New(maxN) }},
	}
}
