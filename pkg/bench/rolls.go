package bench

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sodalite-io/genutil/pkg/floats"
	"github.com/sodalite-io/genutil/pkg/rolling"
)

// RollImpl is one implementation of a window function: the function
// itself and, optionally, its incremental kernel. A nil kernel skips the
// incremental variant for that implementation.
type RollImpl struct {
	Fn     rolling.Func1D[float64, float64]
	Kernel rolling.Kernel[float64, float64]
}

// CompareRolls compiles every strategy variant of every labelled
// implementation, cross-checks that they all agree on the sample input,
// and only then benchmarks them. Returns the report, the compiled
// variants keyed by "label/strategy", and the reference output.
//
// Validation failures abort before any timing: a fast wrong variant is
// worse than no benchmark at all.
func CompareRolls(
	impls map[string]RollImpl, sample floats.Slice, window int, opts Options,
) (*Report, map[string]rolling.Rolled[float64, float64], floats.Slice, error) {
	if len(impls) == 0 {
		return nil, nil, nil, errNoVariants()
	}

	labels := make([]string, 0, len(impls))
	for label := range impls {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	compiled := make(map[string]rolling.Rolled[float64, float64])
	var refLabel string
	var refOut floats.Slice

	for _, label := range labels {
		impl := impls[label]

		variants := make(map[string]rolling.Rolled[float64, float64])
		for _, strategy := range []rolling.Strategy{rolling.StrategyDirect, rolling.StrategyWindowed} {
			r, err := rolling.Compiler[float64, float64]{
				Fn:       impl.Fn,
				Window:   window,
				Strategy: strategy,
			}.Compile()
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "compiling %s/%s", label, strategy)
			}
			variants[strategy.String()] = r
		}
		if impl.Kernel != nil {
			r, err := rolling.Compiler[float64, float64]{
				Fn:       impl.Fn,
				Window:   window,
				Strategy: rolling.StrategyIncremental,
				Kernel:   impl.Kernel,
			}.Compile()
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "compiling %s/%s", label, rolling.StrategyIncremental)
			}
			variants[rolling.StrategyIncremental.String()] = r
		}

		// Within one implementation, every strategy must reproduce the
		// direct output.
		if err := rolling.Validate(rolling.StrategyDirect.String(), variants, sample); err != nil {
			return nil, nil, nil, errors.Wrapf(err, "validating %s", label)
		}

		// Across implementations, the direct outputs must agree too.
		out := variants[rolling.StrategyDirect.String()](sample)
		if refOut == nil {
			refLabel, refOut = label, out
		} else if i, ok := rolling.FirstDiff(refOut, out, rolling.DefaultAbsTol, rolling.DefaultRelTol); !ok {
			return nil, nil, nil, &rolling.MismatchError{
				Ref:   refLabel,
				Label: label,
				Index: i,
				Want:  refOut[i],
				Got:   out[i],
			}
		}

		for strategy, r := range variants {
			compiled[label+"/"+strategy] = r
		}
	}

	subjects := make(map[string]Func, len(compiled))
	for name, r := range compiled {
		r := r
		subjects[name] = func() { r(sample) }
	}

	report, err := Compare(subjects, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return report, compiled, refOut, nil
}
