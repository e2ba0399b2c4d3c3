package builder

import "math/rand"

// builderConfig carries the one piece of shared state the stochastic
// constructors need: a seeded RNG. Fixed topologies ignore it.
type builderConfig struct {
	rng *rand.Rand
}

// BuilderOption customizes a stochastic constructor by mutating a
// builderConfig before generation begins.
type BuilderOption func(*builderConfig)

// WithRand supplies an explicit RNG, for callers that manage their own
// seeding or want to share one stream across several builder calls.
// Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from the given seed. The usual choice in
// tests and examples: same seed, same graph, every time.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func resolve(opts []BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
