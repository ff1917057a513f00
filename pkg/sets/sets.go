// Package sets implements set operations over slices.
//
// Inputs are treated as sets: duplicates collapse to a single member. Results
// keep the order in which members first appear (the first argument before
// the second), so output is deterministic. Results are never nil.
package sets

type set[T comparable] map[T]struct{}

func of[T comparable](items []T) set[T] {
	s := make(set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s set[T]) has(item T) bool {
	_, ok := s[item]
	return ok
}

// collect appends the members of items accepted by keep, skipping ones already emitted.
func collect[T comparable](out []T, emitted set[T], items []T, keep func(T) bool) []T {
	for _, item := range items {
		if emitted.has(item) || !keep(item) {
			continue
		}
		emitted[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func always[T any](T) bool { return true }

// Unique returns the distinct members of a.
func Unique[T comparable](a []T) []T {
	return collect(make([]T, 0, len(a)), make(set[T], len(a)), a, always[T])
}

// Intersection returns the members present in both a and b.
func Intersection[T comparable](a, b []T) []T {
	inB := of(b)
	return collect(make([]T, 0), make(set[T]), a, inB.has)
}

// Union returns the members present in a or b.
func Union[T comparable](a, b []T) []T {
	emitted := make(set[T], len(a)+len(b))
	out := collect(make([]T, 0, len(a)+len(b)), emitted, a, always[T])
	return collect(out, emitted, b, always[T])
}

// Difference returns the members of a that are not in b.
func Difference[T comparable](a, b []T) []T {
	inB := of(b)
	return collect(make([]T, 0), make(set[T]), a, func(item T) bool { return !inB.has(item) })
}

// SymmetricDifference returns the members present in exactly one of a and b.
func SymmetricDifference[T comparable](a, b []T) []T {
	inA, inB := of(a), of(b)
	emitted := make(set[T])
	out := collect(make([]T, 0), emitted, a, func(item T) bool { return !inB.has(item) })
	return collect(out, emitted, b, func(item T) bool { return !inA.has(item) })
}
