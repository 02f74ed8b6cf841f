package rolling

import (
	"sort"

	"github.com/pkg/errors"
	gfloats "gonum.org/v1/gonum/floats"
)

// Default tolerances for variant comparison. Incremental kernels
// accumulate rounding, so near-equality is the contract, not bitwise
// equality.
const (
	DefaultAbsTol = 1e-8
	DefaultRelTol = 1e-5
)

// FirstDiff returns the first index at which a and b differ beyond the
// combined absolute+relative tolerance, or (-1, true) when they agree
// everywhere. Slices of different lengths differ at the shorter length.
func FirstDiff[O Float](a, b []O, absTol, relTol float64) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if !gfloats.EqualWithinAbsOrRel(float64(a[i]), float64(b[i]), absTol, relTol) {
			return i, false
		}
	}
	if len(a) != len(b) {
		return n, false
	}
	return -1, true
}

// Validate runs every variant on the sample input and compares each
// output elementwise against the variant labelled ref. Variants are a
// manual re-expression of one another, so this check is mandatory before
// trusting any benchmark built on them.
//
// Comparison order is deterministic (labels sorted); the first
// disagreement is returned as a MismatchError naming both labels and the
// offending index.
func Validate[E, O Float](ref string, variants map[string]Rolled[E, O], sample []E) error {
	refFn, ok := variants[ref]
	if !ok {
		return preconditionErrorf("reference variant %q not among the variants", ref)
	}
	want := refFn(sample)

	labels := make([]string, 0, len(variants))
	for label := range variants {
		if label != ref {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	for _, label := range labels {
		got := variants[label](sample)
		if len(got) != len(want) {
			return errors.Wrapf(
				&MismatchError{Ref: ref, Label: label, Index: -1},
				"output length %d != %d", len(got), len(want))
		}
		if i, ok := FirstDiff(want, got, DefaultAbsTol, DefaultRelTol); !ok {
			return &MismatchError{
				Ref:   ref,
				Label: label,
				Index: i,
				Want:  float64(want[i]),
				Got:   float64(got[i]),
			}
		}
	}
	return nil
}
