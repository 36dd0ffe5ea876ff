// Package workload generates the operation streams the benchmarking
// harness replays against each candidate structure: the query_one,
// worst_case, and random families, each capped at 9n+1 operations,
// with a reference output populated by the array-parent two-pass
// structure.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/succdel/bench/algo/arrayparent"
	"github.com/succdel/bench/forest"
	apperrors "github.com/succdel/bench/pkg/errors"
	"github.com/succdel/bench/pkg/utils"
)

// Record is one generated scenario: the operation stream, its reference
// output, and the label identifying the workload family and density.
type Record struct {
	N      int64   `json:"n"`
	Label  string  `json:"label"`
	Input  []int64 `json:"input"`
	Output []int64 `json:"output"`
}

// MaxOperations returns the hard upper bound on stream length for a
// given n, 9n+1.
func MaxOperations(n int64) int64 {
	return 9*n + 1
}

// Generator owns the height-tracking forest that places worst_case and
// random queries, the RNG behind random victim selection, and the
// logger its informational lines go to. The forest is allocated once at
// maxN and reset per scenario by its own Init, never reallocated.
type Generator struct {
	oracle *forest.Forest
	rng    *rand.Rand
	logger utils.Logger
}

// NewGenerator builds a Generator with oracle capacity maxN. The rng is
// seeded by the caller so a whole run stays reproducible end to end;
// a nil logger silences the informational lines.
func NewGenerator(maxN int64, rng *rand.Rand, logger utils.Logger) *Generator {
	if logger == nil {
		logger = &utils.NullLogger{}
	}
	return &Generator{
		oracle: forest.New(maxN),
		rng:    rng,
		logger: logger,
	}
}

// QueryOne emits delete(1),...,delete(n), then n copies of successor(1),
// terminated by 0. alpha is implicitly 1.
func (g *Generator) QueryOne(n int64) (*Record, error) {
	input := make([]int64, 0, 2*n+1)
	for i := int64(1); i <= n; i++ {
		input = append(input, -i)
	}
	for i := int64(0); i < n; i++ {
		input = append(input, 1)
	}
	input = append(input, 0)
	return g.build(n, "query_one", input)
}

// WorstCase interleaves sequential deletions with queries chosen to be
// worst-case for compression-based structures: after deleting i, while
// fewer than floor(i*alpha) queries have been emitted, it queries the
// current deepest node in the height-tracking forest and actually
// applies successor to that forest, so later deepest-node queries
// reflect its evolving shape.
func (g *Generator) WorstCase(n int64, alpha float64) (*Record, error) {
	return g.interleave(n, alpha, fmt.Sprintf("worst_case %.3f", alpha),
		func(i int64) int64 { return i })
}

// Random is the same interleaving as WorstCase, with only the deletion
// choice differing: each delete targets a uniformly random index in
// [1, n-1], so the same index can be deleted more than once. The forest
// absorbs duplicates harmlessly; candidates whose delete is not
// idempotent are a known hazard here and the driver keeps them off this
// family (see the driver package's handling of algo.Idempotent).
func (g *Generator) Random(n int64, alpha float64) (*Record, error) {
	return g.interleave(n, alpha, fmt.Sprintf("random %.3f", alpha),
		func(int64) int64 {
			if n <= 2 {
				return 1
			}
			return 1 + g.rng.Int63n(n-1)
		})
}

// interleave is the shared worst_case/random loop: one delete per i in
// 1..n, each followed by deepest-node queries until floor(i*alpha) have
// been emitted in total, with every operation also applied to the
// forest so its shape tracks the stream.
func (g *Generator) interleave(n int64, alpha float64, label string, victim func(i int64) int64) (*Record, error) {
	g.oracle.Init(n)

	input := make([]int64, 0, MaxOperations(n))
	emitted := int64(0)
	for i := int64(1); i <= n; i++ {
		v := victim(i)
		input = append(input, -v)
		g.oracle.Delete(v)

		target := int64(float64(i) * alpha)
		for emitted < target {
			deep := g.oracle.DeepestNode()
			input = append(input, deep)
			g.oracle.Successor(deep)
			emitted++
		}
		if int64(len(input)) > MaxOperations(n) {
			return nil, apperrors.New(apperrors.CodePrecondition,
				fmt.Sprintf("%s stream for n=%d exceeded the 9n+1 operation budget", label, n))
		}
	}
	input = append(input, 0)

	return g.build(n, label, input)
}

// build runs the reference array-parent two-pass structure over input
// to populate the expected output array.
func (g *Generator) build(n int64, label string, input []int64) (*Record, error) {
	if int64(len(input)) > MaxOperations(n) {
		return nil, apperrors.New(apperrors.CodePrecondition,
			fmt.Sprintf("%s stream for n=%d exceeds the 9n+1 operation budget", label, n))
	}

	ref := arrayparent.New(arrayparent.TwoPass, n)
	ref.Init(n)

	output := make([]int64, len(input))
	for idx, op := range input {
		switch {
		case op == 0:
			output[idx] = 0
		case op > 0:
			output[idx] = ref.Successor(op)
		default:
			ref.Delete(-op)
			output[idx] = 0
		}
	}

	g.logger.Info("generated %s: n=%d, %d operations", label, n, len(input))
	return &Record{N: n, Label: label, Input: input, Output: output}, nil
}
