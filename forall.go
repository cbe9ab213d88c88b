package qc

import (
	"fmt"
	"sort"
)

// Args is the argument mapping a test function receives: parameter name
// to concrete value.
type Args map[string]any

// Config controls one trial driver. Zero values fall back to the QC_*
// process environment, then to the package defaults.
type Config struct {
	// Tries is the number of trials per wrapped call. Default: 100.
	Tries int

	// Seed seeds a fresh Env. 0 means QC_SEED, then time-based.
	Seed int64

	// Size is the size bound of the fresh Env. 0 means QC_SIZE, then 256.
	Size int

	// Verbose logs every trial's arguments before the call.
	Verbose bool

	// Env, when set, is used as is and Seed/Size/Verbose are ignored.
	Env *Env

	// Reporter receives trial and counterexample diagnostics. Default:
	// structured logging to stderr.
	Reporter Reporter
}

// environment resolves the Env this config describes. Explicit Config
// values win over the process environment.
func (cfg Config) environment() *Env {
	if cfg.Env != nil {
		return cfg.Env
	}
	s := processSettings()
	opts := EnvOptions{
		Seed:    cfg.Seed,
		Size:    cfg.Size,
		Verbose: cfg.Verbose || s.Verbose,
	}
	if opts.Seed == 0 {
		opts.Seed = s.Seed
	}
	if opts.Size <= 0 {
		opts.Size = s.Size
	}
	return NewEnv(opts)
}

func (cfg Config) tries() int {
	if cfg.Tries > 0 {
		return cfg.Tries
	}
	if t := processSettings().Tries; t > 0 {
		return t
	}
	return DefaultTries
}

// Forall wraps fn with randomized-argument trials. gens maps parameter
// names to Gens (or literal values). The wrapped function forwards any
// caller-supplied Args and injects one freshly drawn value per configured
// name on every trial, overriding same-named caller values.
//
// The first trial whose fn call returns a non-nil error stops the loop:
// the triggering arguments are reported as a counterexample and the error
// is returned unchanged. A panicking fn is reported the same way, then
// re-panicked with the original value. If all trials pass, the wrapped
// call returns nil.
func Forall(cfg Config, gens map[string]any, fn func(Args) error) func(Args) error {
	if fn == nil {
		panic("qc: Forall requires a test function")
	}
	tries := cfg.tries()
	env := cfg.environment()
	rep := cfg.Reporter
	if rep == nil {
		rep = defaultReporter()
	}

	// Names are drawn in sorted order so the draw sequence for a given
	// seed does not depend on map iteration order.
	names := make([]string, 0, len(gens))
	for name := range gens {
		names = append(names, name)
	}
	sort.Strings(names)
	sources := make([]Source, len(names))
	for i, name := range names {
		sources[i] = asSource(gens[name])
	}

	return func(caller Args) error {
		run := runID()
		draw := make([]func() any, len(sources))
		for i, s := range sources {
			draw[i] = s.source(env)
		}
		for i := 0; i < tries; i++ {
			args := make(Args, len(caller)+len(names))
			for k, v := range caller {
				args[k] = v
			}
			for j, name := range names {
				args[name] = draw[j]()
			}
			if env.verbose {
				rep.Trial(run, args)
			}
			if err := runTrial(rep, run, args, fn); err != nil {
				return err
			}
		}
		return nil
	}
}

// runTrial invokes fn once, reporting the triggering arguments before any
// failure propagates. Panics are re-raised with their original value.
func runTrial(rep Reporter, run string, args Args, fn func(Args) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			rep.Counterexample(run, args, fmt.Errorf("panic: %v", r))
			panic(r)
		}
	}()
	if err = fn(args); err != nil {
		rep.Counterexample(run, args, err)
	}
	return err
}
