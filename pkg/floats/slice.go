package floats

import (
	gfloats "gonum.org/v1/gonum/floats"
)

// Slice is a float64 series with a few aggregate helpers attached.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s *Slice) Pop(i int64) (v float64) {
	v = (*s)[i]
	*s = append((*s)[:i], (*s)[i+1:]...)
	return v
}

func (s Slice) Copy() Slice {
	out := make(Slice, len(s))
	copy(out, s)
	return out
}

func (s Slice) Add(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] + b[i]
	}
	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] - b[i]
	}
	return c
}

func (s Slice) Mul(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] * b[i]
	}
	return c
}

func (s Slice) Div(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] / b[i]
	}
	return c
}

func (s Slice) Sum() float64 {
	return gfloats.Sum(s)
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return gfloats.Sum(s) / float64(len(s))
}

func (s Slice) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	return gfloats.Max(s)
}

func (s Slice) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	return gfloats.Min(s)
}

func (s Slice) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Truncate keeps the last size elements.
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}

func (s Slice) Length() int {
	return len(s)
}
