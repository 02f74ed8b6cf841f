package collection

// Pair is a generic 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Fst and Snd are function forms of the field accessors, handy as
// arguments to the higher-order helpers in this package.
func Fst[A, B any](p Pair[A, B]) A { return p.First }

func Snd[A, B any](p Pair[A, B]) B { return p.Second }

// Zip2 pairs as and bs elementwise, stopping at the shorter input.
func Zip2[A, B any](as []A, bs []B) []Pair[A, B] {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return out
}

// Unzip2 splits pairs into their component slices.
func Unzip2[A, B any](ps []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(ps))
	bs := make([]B, len(ps))
	for i, p := range ps {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}
