// Package builder produces deterministic graph.Graph fixtures for tests and
// for the SPC2H command-line tools: fixed topologies (Complete, Cycle, Path,
// Star, Wheel, Grid) and two stochastic generators (RandomSparse,
// RandomRegular) seeded via a functional BuilderOption, the same pattern the
// teacher's builder package uses to seed its own stochastic constructors.
//
// Unlike the teacher's Constructor/BuildGraph composition model — built for
// a core.Graph that supports directed/weighted/multigraph modes and
// string-scheme vertex IDs — graph.Graph is always undirected, unweighted,
// and int-vertexed with a fixed n known up front. Composing several
// constructors onto one mutable graph buys nothing in that setting, so each
// topology factory here builds and returns its own *graph.Graph directly
// instead of returning a Constructor closure. The functional-options
// pattern for seeding (BuilderOption, WithSeed, WithRand) and the
// sentinel-error / fmt.Errorf("%w: ...") style carry over unchanged.
package builder

import "errors"

// ErrTooFewVertices indicates a numeric parameter (n, rows, cols, degree) is
// smaller than the constructor's minimum. RandomRegular also returns it when
// the degree is not below n or when n*d is odd.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability argument outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without an
// RNG (WithSeed/WithRand) when one is required for a nondegenerate draw.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a bounded-retry construction strategy (stub
// matching for RandomRegular) exhausted its attempts without producing a
// valid simple graph.
var ErrConstructFailed = errors.New("builder: construction failed")
