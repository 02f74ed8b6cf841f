package collection

// Unique drops duplicate elements, keeping the first appearance of each.
func Unique[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// UniqueFunc drops elements whose key has been seen before, keeping the
// first appearance of each key.
func UniqueFunc[T any, K comparable](key func(T) K, xs []T) []T {
	seen := make(map[K]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		k := key(x)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, x)
	}
	return out
}

// EqualElems reports whether xs and ys hold the same elements with the
// same multiplicities, in any order.
func EqualElems[T comparable](xs, ys []T) bool {
	if len(xs) != len(ys) {
		return false
	}
	counts := make(map[T]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	for _, y := range ys {
		counts[y]--
		if counts[y] < 0 {
			return false
		}
	}
	return true
}

// Diff removes from xs one occurrence per element of ys, preserving the
// order of xs. Unlike a set difference, duplicates in xs survive unless
// matched by as many duplicates in ys.
func Diff[T comparable](xs, ys []T) []T {
	pending := make(map[T]int, len(ys))
	for _, y := range ys {
		pending[y]++
	}
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pending[x] > 0 {
			pending[x]--
			continue
		}
		out = append(out, x)
	}
	return out
}
