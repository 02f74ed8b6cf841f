package collection

import "github.com/pkg/errors"

// Partition splits xs into the elements satisfying p and the rest,
// preserving order in both halves.
func Partition[T any](p func(T) bool, xs []T) (yes, no []T) {
	for _, x := range xs {
		if p(x) {
			yes = append(yes, x)
		} else {
			no = append(no, x)
		}
	}
	return yes, no
}

// GroupBy buckets xs by the key function, preserving order within each
// bucket.
func GroupBy[K comparable, T any](key func(T) K, xs []T) map[K][]T {
	out := make(map[K][]T)
	for _, x := range xs {
		k := key(x)
		out[k] = append(out[k], x)
	}
	return out
}

// Find returns the first element satisfying p.
func Find[T any](p func(T) bool, xs []T) (T, bool) {
	for _, x := range xs {
		if p(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// FoldQ is a fold whose consumption order is decided as it goes: at each
// step the first remaining element satisfying cond is consumed into the
// accumulator, and update may rewrite the remaining elements in response.
// It stops when no remaining element qualifies and returns the
// accumulator together with whatever is left.
func FoldQ[T, A any](
	fold func(acc A, x T) A,
	update func(acc A, x T, rest []T) []T,
	cond func(T) bool,
	xs []T,
	acc A,
) (A, []T) {
	rest := make([]T, len(xs))
	copy(rest, xs)

	for len(rest) > 0 {
		i := -1
		for j, x := range rest {
			if cond(x) {
				i = j
				break
			}
		}
		if i < 0 {
			break
		}
		x := rest[i]
		rest = append(rest[:i], rest[i+1:]...)
		acc = fold(acc, x)
		rest = update(acc, x, rest)
	}
	return acc, rest
}

// FoldQStrict is FoldQ that fails when elements are left unconsumed.
func FoldQStrict[T, A any](
	fold func(acc A, x T) A,
	update func(acc A, x T, rest []T) []T,
	cond func(T) bool,
	xs []T,
	acc A,
) (A, error) {
	acc, rest := FoldQ(fold, update, cond, xs, acc)
	if len(rest) > 0 {
		return acc, errors.Errorf("no element satisfies the condition while %d remain", len(rest))
	}
	return acc, nil
}
