package collection

// ZipMaps collects, for each key present in every input map, the values
// from each map in argument order.
func ZipMaps[K comparable, V any](maps ...map[K]V) map[K][]V {
	out := make(map[K][]V)
	if len(maps) == 0 {
		return out
	}
outer:
	for k := range maps[0] {
		vs := make([]V, len(maps))
		for i, m := range maps {
			v, ok := m[k]
			if !ok {
				continue outer
			}
			vs[i] = v
		}
		out[k] = vs
	}
	return out
}

// MergeWith folds src into dst: keys missing from dst are copied, keys
// present in both are combined with f(existing, incoming). dst is
// modified in place and returned.
func MergeWith[K comparable, V any](dst, src map[K]V, f func(V, V) V) map[K]V {
	for k, v := range src {
		if old, ok := dst[k]; ok {
			dst[k] = f(old, v)
		} else {
			dst[k] = v
		}
	}
	return dst
}

// Combinations produces all subsets of xs with sizes from minSize to
// maxSize inclusive, in increasing size and positional order. A maxSize
// below minSize means "up to len(xs)".
func Combinations[T any](xs []T, minSize, maxSize int) [][]T {
	if maxSize < minSize {
		maxSize = len(xs)
	}
	if minSize < 1 {
		minSize = 1
	}
	var out [][]T
	for size := minSize; size <= maxSize && size <= len(xs); size++ {
		combinationsOfSize(xs, size, nil, 0, &out)
	}
	return out
}

func combinationsOfSize[T any](xs []T, size int, prefix []T, start int, out *[][]T) {
	if size == 0 {
		combo := make([]T, len(prefix))
		copy(combo, prefix)
		*out = append(*out, combo)
		return
	}
	for i := start; i <= len(xs)-size; i++ {
		combinationsOfSize(xs, size-1, append(prefix, xs[i]), i+1, out)
	}
}
