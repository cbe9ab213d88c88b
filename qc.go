// Package qc provides property-based testing with composable, seeded
// random value generators.
//
// Values are described by generators (Gen) which, bound to an Env, yield
// infinite pull-based streams. The seed is recorded so a failing trial can
// be reproduced exactly.
//
// Basic usage:
//
//	func TestReverse(t *testing.T) {
//	    qc.Check(t, "reverse twice is identity", qc.Config{},
//	        map[string]any{"s": qc.Strings(0, 255)},
//	        func(args qc.Args) error {
//	            s := args["s"].(string)
//	            if reverse(reverse(s)) != s {
//	                return fmt.Errorf("reverse(reverse(%q)) != %q", s, s)
//	            }
//	            return nil
//	        })
//	}
package qc

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	// DefaultSize is the size bound used when none is configured. It caps
	// the length of generated collections and the exponent of generated
	// magnitudes.
	DefaultSize = 256

	// DefaultTries is the number of trials the driver runs per wrapped
	// call when none is configured.
	DefaultTries = 100
)

// Env owns a seeded random source plus the size and verbosity settings
// shared by every stream bound to it. The random source advances strictly
// in draw order, so two Envs built with the same seed produce identical
// values for identical draw sequences.
//
// An Env is not safe for concurrent use; confine each one to a single
// trial loop.
type Env struct {
	rng     *rand.Rand
	seed    int64
	size    int
	verbose bool
}

// EnvOptions configures a new Env. Zero values mean: time-based seed,
// DefaultSize, quiet.
type EnvOptions struct {
	Seed    int64
	Size    int
	Verbose bool
}

// NewEnv creates an Env from opts.
func NewEnv(opts EnvOptions) *Env {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	return &Env{
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		size:    size,
		verbose: opts.Verbose,
	}
}

// Seed returns the seed this Env was built with. Logging it on failure is
// what makes a failing run reproducible.
func (e *Env) Seed() int64 { return e.seed }

// Size returns the configured size bound.
func (e *Env) Size() int { return e.size }

// Verbose reports whether per-trial argument logging is enabled.
func (e *Env) Verbose() bool { return e.verbose }

var (
	defaultOnce sync.Once
	defaultEnv  *Env
)

// Default returns the shared process-wide Env, built on first use from the
// QC_* environment variables (see settings). Streams resolved with a nil
// Env bind against it.
func Default() *Env {
	defaultOnce.Do(func() {
		s := processSettings()
		defaultEnv = NewEnv(EnvOptions{Seed: s.Seed, Size: s.Size, Verbose: s.Verbose})
	})
	return defaultEnv
}

// between returns a uniform draw from [lo, hi] inclusive, advancing the
// random source by exactly one call.
func (e *Env) between(lo, hi int64) int64 {
	if lo > hi {
		panic(fmt.Sprintf("qc: empty draw range [%d, %d]", lo, hi))
	}
	return lo + e.rng.Int63n(hi-lo+1)
}

// length draws a collection length uniformly from [0, size]. Zero-length
// values are always reachable.
func (e *Env) length() int {
	return int(e.between(0, int64(e.size)))
}
