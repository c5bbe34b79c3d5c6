package rng

import (
	"hash/fnv"
	"math/rand"

	"github.com/katalvlaran/mpscircuit/simerr"
)

// StreamName is one of the closed set of RNG stream names the core
// understands (spec.md §6 "RNG stream names").
type StreamName string

const (
	// Ctrl drives stochastic branch selection in Operations.
	Ctrl StreamName = "ctrl"
	// Proj is reserved for projections.
	Proj StreamName = "proj"
	// Haar drives HaarRandom unitary sampling.
	Haar StreamName = "haar"
	// Born drives measurement-outcome sampling.
	Born StreamName = "born"
	// StateInit drives RandomMPS initialization.
	StateInit StreamName = "state_init"
)

// AllStreamNames lists every stream name the registry recognizes.
var AllStreamNames = []StreamName{Ctrl, Proj, Haar, Born, StateInit}

func isKnownStream(name StreamName) bool {
	for _, n := range AllStreamNames {
		if n == name {
			return true
		}
	}
	return false
}

// Registry is a fixed set of named, independently seeded RNG streams.
// It is not safe for concurrent use by multiple goroutines on the same
// SimulationState, matching the single-threaded-cooperative model of §5;
// distinct SimulationStates must use distinct Registries.
type Registry struct {
	streams map[StreamName]*rand.Rand
	seeds   map[StreamName]int64
}

// NewRegistry builds a Registry from an explicit per-stream seed map. Only
// streams present in seeds are constructed; drawing from an unconstructed
// stream is an Internal error (a caller bug: the stream should have been
// seeded at registry-construction time).
func NewRegistry(seeds map[StreamName]int64) (*Registry, error) {
	reg := &Registry{
		streams: make(map[StreamName]*rand.Rand, len(seeds)),
		seeds:   make(map[StreamName]int64, len(seeds)),
	}
	for name, seed := range seeds {
		if !isKnownStream(name) {
			return nil, simerr.InvalidArgument("rng.NewRegistry", "unknown stream name %q", name)
		}
		reg.streams[name] = rand.New(rand.NewSource(seed))
		reg.seeds[name] = seed
	}
	return reg, nil
}

// Seeds returns a copy of the per-stream seed map this Registry was built
// from, for callers that need to persist or compare run provenance.
func (r *Registry) Seeds() map[StreamName]int64 {
	out := make(map[StreamName]int64, len(r.seeds))
	for name, seed := range r.seeds {
		out[name] = seed
	}
	return out
}

// Clone returns a fresh Registry re-seeded from the same per-stream seeds
// as r, with every stream reset to its initial draw — not a copy of r's
// current draw position. This is what "construct a fresh Circuit/state per
// trajectory" (§5) needs when the same seeds must reproduce the same
// sequence for a repeated trajectory rather than continuing the original's
// sequence.
func (r *Registry) Clone() *Registry {
	reg, _ := NewRegistry(r.seeds) // r.seeds only ever holds known names
	return reg
}

// NewRegistryFromSeed derives a seed for every known stream name from a
// single master seed, deterministically, and constructs all of them. Two
// registries built from the same master seed draw byte-identical sequences
// from every stream (§8 "identical RNG seeds... MPS tensors are equal").
func NewRegistryFromSeed(seed int64) *Registry {
	seeds := make(map[StreamName]int64, len(AllStreamNames))
	for _, name := range AllStreamNames {
		seeds[name] = deriveSeed(seed, name)
	}
	reg, _ := NewRegistry(seeds) // seeds are all known names; never errors
	return reg
}

// deriveSeed mixes the master seed with the stream name via FNV-1a so
// distinct names never collide and the derivation is stable across
// processes/platforms (no reliance on map iteration order or pointer
// values).
func deriveSeed(seed int64, name StreamName) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	mix := h.Sum64()
	return seed ^ int64(mix)
}

// Float64 draws the next uniform float64 in [0,1) from the named stream.
// Returns Internal if name was never seeded into this registry.
func (r *Registry) Float64(name StreamName) (float64, error) {
	stream, ok := r.streams[name]
	if !ok {
		return 0, simerr.Internal("rng.Registry.Float64", "stream %q not present in registry", name)
	}
	return stream.Float64(), nil
}

// Stream returns the underlying *rand.Rand for name, for gate
// implementations that need more than a single Float64 draw (e.g.
// HaarRandom sampling several independent values per call). Returns nil,
// Internal if the stream was never seeded.
func (r *Registry) Stream(name StreamName) (*rand.Rand, error) {
	stream, ok := r.streams[name]
	if !ok {
		return nil, simerr.Internal("rng.Registry.Stream", "stream %q not present in registry", name)
	}
	return stream, nil
}

// Has reports whether name was seeded into this registry.
func (r *Registry) Has(name StreamName) bool {
	_, ok := r.streams[name]
	return ok
}
