package state

import "github.com/katalvlaran/mpscircuit/rng"

// SiteType labels the local physical Hilbert space at every site (spec.md
// §3, §6). A SimulationState has exactly one site type for its whole chain.
type SiteType string

const (
	Qubit SiteType = "Qubit"
	SOne  SiteType = "S=1"
	Qudit SiteType = "Qudit"
)

// defaultCutoff and defaultMaxDim match spec.md §6's New defaults.
const (
	defaultCutoff = 1e-10
	defaultMaxDim = 100
)

type stateConfig struct {
	siteType         SiteType
	localDim         int
	localDimExplicit bool
	cutoff           float64
	maxDim           int
	seeds            map[rng.StreamName]int64
}

// Option customizes a SimulationState's configuration before construction,
// following the same functional-option idiom as circuit.CircuitOption:
// constructors validate and panic on a meaningless input.
type Option func(*stateConfig)

// WithSiteType sets the site-type label. Panics if t is not one of Qubit,
// S=1, Qudit.
func WithSiteType(t SiteType) Option {
	switch t {
	case Qubit, SOne, Qudit:
	default:
		panic("state: WithSiteType(unknown)")
	}
	return func(c *stateConfig) {
		c.siteType = t
	}
}

// WithLocalDim sets the local Hilbert dimension explicitly. Required for
// Qudit; optional (and must agree with the fixed value) for Qubit/S=1.
// Panics if d < 2.
func WithLocalDim(d int) Option {
	if d < 2 {
		panic("state: WithLocalDim(d<2)")
	}
	return func(c *stateConfig) {
		c.localDim = d
		c.localDimExplicit = true
	}
}

// WithCutoff overrides the SVD truncation cutoff. Panics if c < 0.
func WithCutoff(cutoff float64) Option {
	if cutoff < 0 {
		panic("state: WithCutoff(cutoff<0)")
	}
	return func(c *stateConfig) {
		c.cutoff = cutoff
	}
}

// WithMaxDim overrides the maximum bond dimension. Panics if n < 1.
func WithMaxDim(n int) Option {
	if n < 1 {
		panic("state: WithMaxDim(n<1)")
	}
	return func(c *stateConfig) {
		c.maxDim = n
	}
}

// WithStreamSeed seeds one named RNG stream explicitly. Unlike WithRNGSeed,
// streams not named by any WithStreamSeed call remain unseeded (drawing
// from them is an error), matching spec.md §6's default "rng=none".
func WithStreamSeed(name rng.StreamName, seed int64) Option {
	return func(c *stateConfig) {
		if c.seeds == nil {
			c.seeds = make(map[rng.StreamName]int64)
		}
		c.seeds[name] = seed
	}
}

// WithRNGSeed derives and seeds every known stream name from a single
// master seed via rng.NewRegistryFromSeed, so two SimulationStates built
// with the same master seed draw byte-identical sequences from every
// stream (spec.md §8).
func WithRNGSeed(seed int64) Option {
	return func(c *stateConfig) {
		reg := rng.NewRegistryFromSeed(seed)
		if c.seeds == nil {
			c.seeds = make(map[rng.StreamName]int64, len(rng.AllStreamNames))
		}
		for name, s := range reg.Seeds() {
			c.seeds[name] = s
		}
	}
}

func newStateConfig(opts ...Option) stateConfig {
	cfg := stateConfig{siteType: Qubit, cutoff: defaultCutoff, maxDim: defaultMaxDim}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// resolveSiteDim enforces invariant (b) of spec.md §3: site_type and d are
// consistent (Qubit⇒d=2, S=1⇒d=3, Qudit⇒d≥2 explicit).
func resolveSiteDim(op string, cfg stateConfig) (int, error) {
	switch cfg.siteType {
	case Qubit:
		if cfg.localDimExplicit && cfg.localDim != 2 {
			return 0, errSiteTypeDimMismatch(op, Qubit, 2, cfg.localDim)
		}
		return 2, nil
	case SOne:
		if cfg.localDimExplicit && cfg.localDim != 3 {
			return 0, errSiteTypeDimMismatch(op, SOne, 3, cfg.localDim)
		}
		return 3, nil
	case Qudit:
		if !cfg.localDimExplicit {
			return 0, errQuditRequiresLocalDim(op)
		}
		return cfg.localDim, nil
	default:
		return 0, errUnsupportedSiteType(op, cfg.siteType)
	}
}
