// Package microset implements the bit-packed micro-set composite: a
// word-packed bitmap of live elements, with a macro
// successor-delete structure operating over the bucket domain so that
// an empty bucket can itself be "deleted" at the macro level.
package microset

import (
	"fmt"

	"github.com/succdel/bench/algo"
	"github.com/succdel/bench/pkg/collections"
)

// wordBits is W, the native word width the bit-packed leaves use.
const wordBits = 64

// MacroFactory builds a fresh macro structure sized for a given number
// of buckets. Binding a composite to a macro family is done once, via
// Builder, never by mutating a global.
type MacroFactory func(maxBuckets int64) algo.Structure

// Builder constructs micro-set composites parameterised by a macro
// structure family: binding happens through a builder, never through
// mutable global state.
type Builder struct {
	macroName    string
	macroFactory MacroFactory
	maxN         int64
}

// NewBuilder creates a Builder that will bind every composite it
// produces to the named macro family.
func NewBuilder(macroName string, factory MacroFactory, maxN int64) *Builder {
	return &Builder{macroName: macroName, macroFactory: factory, maxN: maxN}
}

// Build returns a new composite bound to this Builder's macro family.
func (b *Builder) Build() *Structure {
	maxBuckets := b.maxN/wordBits + 2
	return &Structure{
		macroName: b.macroName,
		bits:      collections.NewBitset(int(b.maxN) + 2),
		macro:     b.macroFactory(maxBuckets),
	}
}

// Structure is a micro-set composite bound to exactly one macro family
// at construction time: Build sets the macro once and nothing rebinds
// it afterward; Init only resets the bits and that macro.
type Structure struct {
	macroName string
	bits      *collections.Bitset
	macro     algo.Structure
	n         int64
	buckets   int64
}

// Name reports the composite's display string, including its bound
// macro family.
func (s *Structure) Name() string {
	return fmt.Sprintf("microset-%s", s.macroName)
}

// IdempotentDelete reports whether repeated Delete on the same index is
// safe: clearing an already-clear bit is a no-op. When the bucket's word
// is already empty, a repeat calls the macro's Delete on that bucket
// again; each bound macro (quick-find, union-find, array-parent 2-pass)
// leaves the bucket's successor unchanged on such a repeat.
func (s *Structure) IdempotentDelete() bool {
	return true
}

// bucket returns i's word index.
func bucket(i int64) int64 {
	return i / wordBits
}

// Init sets every bit in [0, n+1] live and initialises the macro
// structure over the bucket domain.
func (s *Structure) Init(n int64) {
	s.n = n
	s.buckets = bucket(n+1) + 1
	s.bits.SetFirst(int(n) + 2)
	s.macro.Init(s.buckets - 1)
}

// Delete clears i's bit; if the containing word becomes entirely
// zero, the bucket itself is deleted at the macro level.
func (s *Structure) Delete(i int64) {
	b := bucket(i)
	s.bits.Clear(int(i))
	if s.bits.WordEmpty(int(b * wordBits)) {
		s.macro.Delete(b)
	}
}

// Successor inspects i's own word first via a hardware
// count-trailing-zeros primitive; only when that word has nothing left
// at or above i's offset does it fall through to the macro structure to
// locate the next live bucket.
func (s *Structure) Successor(i int64) int64 {
	if pos, ok := s.bits.TrailingZerosFrom(int(i)); ok {
		return int64(pos)
	}
	nextBucket := s.macro.Successor(bucket(i) + 1)
	pos, ok := s.bits.TrailingZerosFrom(int(nextBucket * wordBits))
	if !ok {
		// The macro reported a live bucket whose word is empty; this
		// would violate the macro-liveness invariant and indicates a
		// bug in the bound macro structure, not a valid runtime state.
		panic(fmt.Sprintf("microset: macro bucket %d reported live but word is empty", nextBucket))
	}
	return int64(pos)
}
