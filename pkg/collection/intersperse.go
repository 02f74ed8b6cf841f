package collection

import "github.com/pkg/errors"

// Intersperse inserts one separator from seps after every n elements of
// xs, consuming separators in order. prepend adds a leading separator;
// appendTail keeps the trailing separator when len(xs) is a multiple of
// n, which is otherwise dropped. Fails when seps cannot cover xs with the
// given parameters.
func Intersperse[T any](xs, seps []T, n int, prepend, appendTail bool) ([]T, error) {
	if n < 1 {
		return nil, errors.Errorf("intersperse interval %d, must be >= 1", n)
	}
	needed := len(xs) / n
	if len(xs) > 0 && len(xs)%n == 0 && !appendTail {
		needed--
	}
	if prepend {
		needed++
	}
	if len(seps) < needed {
		return nil, errors.Errorf("%d separators given, at least %d needed", len(seps), needed)
	}

	out := make([]T, 0, len(xs)+needed)
	si := 0
	if prepend {
		out = append(out, seps[si])
		si++
	}
	for i, x := range xs {
		out = append(out, x)
		if (i+1)%n != 0 {
			continue
		}
		if i == len(xs)-1 && !appendTail {
			continue
		}
		out = append(out, seps[si])
		si++
	}
	return out, nil
}

// IntersperseValue inserts y after every n elements of xs.
func IntersperseValue[T any](xs []T, y T, n int, prepend, appendTail bool) ([]T, error) {
	if n < 1 {
		return nil, errors.Errorf("intersperse interval %d, must be >= 1", n)
	}
	out := make([]T, 0, len(xs)+len(xs)/n+1)
	if prepend {
		out = append(out, y)
	}
	for i, x := range xs {
		out = append(out, x)
		if (i+1)%n != 0 {
			continue
		}
		if i == len(xs)-1 && !appendTail {
			continue
		}
		out = append(out, y)
	}
	return out, nil
}
