// Package bench implements the validation-then-timing harness: every
// candidate structure is replayed against a generated workload and
// checked against a reference output before any of its operations are
// timed.
package bench

import (
	"context"
	"fmt"

	"github.com/succdel/bench/algo"
	apperrors "github.com/succdel/bench/pkg/errors"
	"github.com/succdel/bench/pkg/parallel"
	"github.com/succdel/bench/pkg/writer"
	"github.com/succdel/bench/workload"
)

// ReproPath is where MustValidate snapshots the failing Record so a
// disagreement can be replayed offline without regenerating the
// workload from its random seed.
const ReproPath = "../data/failed_repro.json"

// Candidate pairs a structure under test with the display name used in
// CSV rows. The driver hands in its process-wide singletons here, the
// same instances the timer replays afterward; that is safe because
// every replay starts with the structure's own Init, and no two
// candidates share an instance.
type Candidate struct {
	Name      string
	Structure algo.Structure
}

// replay runs one (input, structure) pair to completion and returns the
// per-query output array, matching workload.Record.Output's shape:
// every index holds either a successor result or 0.
func replay(s algo.Structure, n int64, input []int64) []int64 {
	s.Init(n)
	output := make([]int64, len(input))
	for idx, op := range input {
		switch {
		case op == 0:
			output[idx] = 0
		case op > 0:
			output[idx] = s.Successor(op)
		default:
			s.Delete(-op)
			output[idx] = 0
		}
	}
	return output
}

// Mismatch describes where a candidate's replay first disagreed with
// the reference output.
type Mismatch struct {
	Candidate string
	Index     int
	Got       int64
	Want      int64
}

// Validate replays rec against every candidate concurrently (via
// pkg/parallel's worker pool, since this phase is never timed) and
// returns every mismatch found. An empty result means every candidate
// agreed with rec.Output at every index.
func Validate(rec *workload.Record, candidates []Candidate) ([]Mismatch, error) {
	pool := parallel.NewWorkerPool[Candidate, *Mismatch](parallel.DefaultPoolConfig())

	results := pool.ExecuteFunc(context.Background(), candidates,
		func(_ context.Context, c Candidate) (*Mismatch, error) {
			got := replay(c.Structure, rec.N, rec.Input)
			for idx := range got {
				if got[idx] != rec.Output[idx] {
					return &Mismatch{Candidate: c.Name, Index: idx, Got: got[idx], Want: rec.Output[idx]}, nil
				}
			}
			return nil, nil
		})

	var mismatches []Mismatch
	for _, r := range results {
		if r.Error != nil {
			return nil, apperrors.Wrap(apperrors.CodeValidationMismatch,
				fmt.Sprintf("candidate %q replay failed", r.Input.Name), r.Error)
		}
		if r.Result != nil {
			mismatches = append(mismatches, *r.Result)
		}
	}
	return mismatches, nil
}

// MustValidate is Validate, raising a CodeValidationMismatch error
// immediately on any disagreement. The driver calls this before timing
// any scenario: an invalid candidate must never produce a CSV row.
func MustValidate(rec *workload.Record, candidates []Candidate) error {
	mismatches, err := Validate(rec, candidates)
	if err != nil {
		return err
	}
	if len(mismatches) == 0 {
		return nil
	}
	m := mismatches[0]
	_ = writer.WriteSnapshot(ReproPath, rec)
	return apperrors.New(apperrors.CodeValidationMismatch,
		fmt.Sprintf("%s: output[%d] = %d, want %d (workload %q, n=%d)",
			m.Candidate, m.Index, m.Got, m.Want, rec.Label, rec.N))
}
