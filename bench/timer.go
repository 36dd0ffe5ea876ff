package bench

import (
	"github.com/succdel/bench/algo"
	"github.com/succdel/bench/pkg/utils"
)

// sink defends every timed trial against dead-code elimination: each
// query's result is folded in by XOR, and the accumulated value is
// written to stdout at the end of a run so the compiler cannot prove
// the replays unobservable.
var sink int64

// Sink returns the XOR of every successor result a timed replay has
// produced so far in this process.
func Sink() int64 {
	return sink
}

// runOnce replays input against a freshly initialized structure and
// returns the elapsed wall-clock duration in seconds, using clock for
// the before/after reading.
func runOnce(clock utils.Clock, s algo.Structure, n int64, input []int64) float64 {
	s.Init(n)
	var local int64

	start := clock.Now()
	for _, op := range input {
		switch {
		case op == 0:
			// terminator, not timed work
		case op > 0:
			local ^= s.Successor(op)
		default:
			s.Delete(-op)
		}
	}
	elapsed := clock.Since(start)

	sink ^= local
	return elapsed.Seconds()
}

// Timer runs the best-of-k adaptive-repetition protocol: it repeats
// runOnce at least MinRepeats times, and keeps repeating
// past that floor until the cumulative wall-clock time reaches
// MinTestTime; it runs BestOf such trials and reports the minimum of
// their per-replay averages.
type Timer struct {
	Clock       utils.Clock
	BestOf      int
	MinRepeats  int
	MinTestTime float64 // seconds
}

// NewTimer builds a Timer bound to a real clock and the given
// protocol parameters.
func NewTimer(bestOf, minRepeats int, minTestTimeMS int64) *Timer {
	return &Timer{
		Clock:       utils.SystemClock(),
		BestOf:      bestOf,
		MinRepeats:  minRepeats,
		MinTestTime: float64(minTestTimeMS) / 1000.0,
	}
}

// Time runs the protocol against s with the given operation stream and
// returns the best-of-k seconds figure for one CSV row: BestOf
// independent trials, each its own adaptively-repeated average, with
// the minimum of the trial averages reported.
func (t *Timer) Time(s algo.Structure, n int64, input []int64) float64 {
	trials := make([]float64, t.BestOf)
	for i := range trials {
		trials[i] = t.runTrial(s, n, input)
	}
	return bestOf(trials, 1)
}

// runTrial implements one of the BestOf trials: replay the stream
// MinRepeats times, then keep doubling the target repeat
// count — reusing the repetitions already performed — until the
// cumulative elapsed time reaches MinTestTime. The trial's figure is
// the per-replay average: total elapsed / total repeats.
func (t *Timer) runTrial(s algo.Structure, n int64, input []int64) float64 {
	target := int64(t.MinRepeats)
	if target < 1 {
		target = 1
	}

	var total float64
	var count int64
	for {
		for count < target {
			total += runOnce(t.Clock, s, n, input)
			count++
		}
		if total >= t.MinTestTime {
			break
		}
		target *= 2
	}
	return total / float64(count)
}

// bestOf returns the mean of the k smallest values in samples (k
// capped at len(samples)): the fastest handful of trials, averaged to
// smooth scheduler noise.
func bestOf(samples []float64, k int) float64 {
	if k > len(samples) {
		k = len(samples)
	}
	sorted := append([]float64(nil), samples...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	var sum float64
	for i := 0; i < k; i++ {
		sum += sorted[i]
	}
	return sum / float64(k)
}
