package qc

// Stream is an infinite, pull-based sequence of values. Streams are not
// restartable: every Next advances the owning Env's random source.
type Stream[T any] struct {
	next func() T
}

// Next draws the next value.
func (s *Stream[T]) Next() T { return s.next() }

func newStream[T any](next func() T) *Stream[T] {
	return &Stream[T]{next: next}
}

// Gen is a deferred description of a value stream: it says how to produce
// values once bound to an Env, but holds no state of its own. Combinators
// close over child Gens and resolve them when their own stream is built.
type Gen[T any] struct {
	build func(*Env) *Stream[T]
}

// From wraps a stream-building function as a Gen. Env method expressions
// work directly, e.g. From((*Env).Ints).
func From[T any](build func(*Env) *Stream[T]) Gen[T] {
	if build == nil {
		panic("qc: From called with nil build func")
	}
	return Gen[T]{build: build}
}

// Lit is the literal arm of the generator model: a Gen whose stream
// repeats v forever and consumes no entropy.
func Lit[T any](v T) Gen[T] {
	return Gen[T]{build: func(*Env) *Stream[T] {
		return newStream(func() T { return v })
	}}
}

// Stream binds the Gen to env and returns its value stream. A nil env
// binds against the shared Default environment; this is the free-function
// convenience form of the API.
func (g Gen[T]) Stream(env *Env) *Stream[T] {
	if g.build == nil {
		panic("qc: Stream called on zero Gen")
	}
	if env == nil {
		env = Default()
	}
	return g.build(env)
}

// Source is the untyped face of a Gen, used where generators of different
// element types share one configuration map (driver parameters, object
// fields). Every Gen is a Source.
type Source interface {
	source(env *Env) func() any
}

func (g Gen[T]) source(env *Env) func() any {
	s := g.Stream(env)
	return func() any { return s.Next() }
}

type literalSource struct {
	v any
}

func (l literalSource) source(*Env) func() any {
	return func() any { return l.v }
}

// asSource applies the generator-or-literal rule: a Source is used as is,
// anything else becomes a constant.
func asSource(v any) Source {
	if s, ok := v.(Source); ok {
		return s
	}
	return literalSource{v: v}
}
