// Package driver implements the scenario driver: it iterates n by
// doubling from MinN to MaxN and, for each n, generates
// the query_one, worst_case, and random workloads (the latter two once
// per alpha in the configured ladder), validates every applicable
// candidate structure against the generated reference output, times
// the validated candidates, and appends one CSV row per candidate per
// scenario.
package driver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/succdel/bench/algo"
	"github.com/succdel/bench/bench"
	"github.com/succdel/bench/pkg/config"
	apperrors "github.com/succdel/bench/pkg/errors"
	"github.com/succdel/bench/pkg/utils"
	"github.com/succdel/bench/pkg/writer"
	"github.com/succdel/bench/workload"
)

// Driver owns one singleton instance of every candidate structure,
// allocated once at startup with capacity MaxN and reset between
// scenarios by each structure's own Init, plus the best-of-k timer,
// the CSV sink, and the progress logger.
type Driver struct {
	cfg    *config.Config
	logger utils.Logger
	timer  *bench.Timer
	writer *writer.CSVWriter
	phases *utils.Timer

	specs      []candidateSpec
	singletons map[string]algo.Structure

	// gen owns the workload oracle forest and the RNG behind random
	// victim selection, both allocated once at construction so a run is
	// reproducible end to end and never reallocates mid-run.
	gen *workload.Generator
}

// New builds a Driver from cfg: every candidate structure is allocated
// once, sized to cfg.Bench.MaxN, rather than reallocated per scenario.
func New(cfg *config.Config, logger utils.Logger) *Driver {
	if logger == nil {
		logger = &utils.NullLogger{}
	}

	specs := candidateSpecs()
	singletons := make(map[string]algo.Structure, len(specs))
	for _, spec := range specs {
		singletons[spec.name] = spec.build(cfg.Bench.MaxN)
	}

	return &Driver{
		cfg:        cfg,
		logger:     logger,
		timer:      bench.NewTimer(cfg.Bench.BestOf, cfg.Bench.MinRepeats, cfg.Bench.MinTestTimeMS),
		writer:     writer.NewCSVWriter(cfg.Bench.CSVPath),
		phases:     utils.NewTimer("driver", utils.WithLogger(logger), utils.WithEnabled(true)),
		specs:      specs,
		singletons: singletons,
		gen:        workload.NewGenerator(cfg.Bench.MaxN, rand.New(rand.NewSource(1)), logger),
	}
}

// Run iterates n over the configured ladder, generating and timing
// every workload family at each n, until ctx is cancelled or a fatal
// error occurs; every error here aborts the run.
func (d *Driver) Run(ctx context.Context) error {
	for n := d.cfg.Bench.MinN; n <= d.cfg.Bench.MaxN; n *= 2 {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.runQueryOne(n); err != nil {
			return err
		}

		for _, alpha := range d.cfg.Bench.Alphas {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := d.runWorstCase(n, alpha); err != nil {
				return err
			}
			if err := d.runRandom(n, alpha); err != nil {
				return err
			}
		}
	}
	return nil
}

// runQueryOne generates and runs the query_one workload at n,
// exempting array-parent-naive and array-parent-recursive once n
// exceeds SkipQueryOneAbove.
func (d *Driver) runQueryOne(n int64) error {
	pt := d.phases.Start("generate:query_one")
	rec, err := d.gen.QueryOne(n)
	pt.Stop()
	if err != nil {
		return apperrors.Wrap(apperrors.CodePrecondition, "query_one generation failed", err)
	}

	applicable := make([]candidateSpec, 0, len(d.specs))
	for _, spec := range d.specs {
		if spec.skipQueryOneAbove && n > d.cfg.Bench.SkipQueryOneAbove {
			continue
		}
		applicable = append(applicable, spec)
	}
	return d.runScenario(rec, applicable)
}

// runWorstCase generates and runs the worst_case workload at (n, alpha)
// against every candidate; no structure is exempt from this family.
func (d *Driver) runWorstCase(n int64, alpha float64) error {
	pt := d.phases.Start("generate:worst_case")
	rec, err := d.gen.WorstCase(n, alpha)
	pt.Stop()
	if err != nil {
		return apperrors.Wrap(apperrors.CodePrecondition,
			fmt.Sprintf("worst_case(%d, %g) generation failed", n, alpha), err)
	}
	return d.runScenario(rec, d.specs)
}

// runRandom generates and runs the random workload at (n, alpha). The
// random workload can delete the same index twice, so it is restricted
// to candidates whose Delete is declared idempotent
// (algo.Idempotent.IdempotentDelete() == true): the unchecked
// array-parent variants are excluded here and represented by their
// checked sibling instead, rather than relying on a duplicate delete
// happening to leave them consistent.
func (d *Driver) runRandom(n int64, alpha float64) error {
	pt := d.phases.Start("generate:random")
	rec, err := d.gen.Random(n, alpha)
	pt.Stop()
	if err != nil {
		return apperrors.Wrap(apperrors.CodePrecondition,
			fmt.Sprintf("random(%d, %g) generation failed", n, alpha), err)
	}

	applicable := make([]candidateSpec, 0, len(d.specs))
	for _, spec := range d.specs {
		if idem, ok := d.singletons[spec.name].(algo.Idempotent); ok && idem.IdempotentDelete() {
			applicable = append(applicable, spec)
		}
	}
	return d.runScenario(rec, applicable)
}

// runScenario validates every applicable candidate against rec, aborts
// on the first disagreement (validation always runs before timing),
// then times each candidate and appends its CSV row.
func (d *Driver) runScenario(rec *workload.Record, specs []candidateSpec) error {
	if len(specs) == 0 {
		return nil
	}

	valCandidates := make([]bench.Candidate, len(specs))
	for i, spec := range specs {
		valCandidates[i] = bench.Candidate{
			Name:      spec.name,
			Structure: d.singletons[spec.name],
		}
	}

	pt := d.phases.Start("validate")
	err := bench.MustValidate(rec, valCandidates)
	pt.Stop()
	if err != nil {
		return err
	}

	for _, spec := range specs {
		inst := d.singletons[spec.name]

		pt := d.phases.Start("time")
		seconds := d.timer.Time(inst, rec.N, rec.Input)
		pt.Stop()

		if err := d.writer.Append(writer.Row{
			Algorithm: spec.name,
			Workload:  rec.Label,
			N:         rec.N,
			Seconds:   seconds,
		}); err != nil {
			return err
		}

		d.logger.Info("%-28s %-20s n=%-9d %.9e s", spec.name, rec.Label, rec.N, seconds)
	}
	return nil
}
