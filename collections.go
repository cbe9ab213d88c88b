package qc

// Tuple is a fixed-arity ordered sequence: a slice drawn once and treated
// as immutable. TupleOf and SliceOf consume entropy identically, so a
// tuple's elements equal the slice that SliceOf would have produced from
// the same random-source state.
type Tuple[T any] []T

// Pair is one key/value draw.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// SliceOf returns a Gen of slices: each draw picks a length uniformly
// from [0, size], then draws that many items in order.
func SliceOf[T any](item Gen[T]) Gen[[]T] {
	return From(func(e *Env) *Stream[[]T] {
		items := item.Stream(e)
		return newStream(func() []T {
			out := make([]T, e.length())
			for i := range out {
				out[i] = items.Next()
			}
			return out
		})
	})
}

// TupleOf is SliceOf reinterpreted as fixed-arity tuples.
func TupleOf[T any](item Gen[T]) Gen[Tuple[T]] {
	slices := SliceOf(item)
	return From(func(e *Env) *Stream[Tuple[T]] {
		s := slices.Stream(e)
		return newStream(func() Tuple[T] {
			return Tuple[T](s.Next())
		})
	})
}

// PairsOf returns a Gen of key/value pairs, drawing one key then one
// value per pair. Keys are not checked for uniqueness here.
func PairsOf[K, V any](keys Gen[K], values Gen[V]) Gen[Pair[K, V]] {
	return From(func(e *Env) *Stream[Pair[K, V]] {
		ks := keys.Stream(e)
		vs := values.Stream(e)
		return newStream(func() Pair[K, V] {
			k := ks.Next()
			v := vs.Next()
			return Pair[K, V]{Key: k, Value: v}
		})
	})
}

// MapOf returns a Gen of maps: each draw picks a length uniformly from
// [0, size], draws that many pairs, and folds them into a map. A pair
// whose key repeats an earlier one overwrites it, so the resulting map
// may be smaller than the drawn length. Last write wins.
func MapOf[K comparable, V any](pairs Gen[Pair[K, V]]) Gen[map[K]V] {
	return From(func(e *Env) *Stream[map[K]V] {
		ps := pairs.Stream(e)
		return newStream(func() map[K]V {
			n := e.length()
			m := make(map[K]V, n)
			for i := 0; i < n; i++ {
				p := ps.Next()
				m[p.Key] = p.Value
			}
			return m
		})
	})
}

// MapOfKV is MapOf over pairs zipped from separate key and value Gens.
func MapOfKV[K comparable, V any](keys Gen[K], values Gen[V]) Gen[map[K]V] {
	return MapOf(PairsOf(keys, values))
}
