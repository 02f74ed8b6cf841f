package rolling

// Compiler describes how to specialize a window function into a Rolled
// variant. The zero value is not usable; Fn and Window must be set.
type Compiler[E, O Float] struct {
	// Fn is the window function to roll.
	Fn Func1D[E, O]

	// Window is the window size n: each output position i aggregates
	// input positions max(0, i-n+1) through i inclusive.
	Window int

	// Strategy picks the steady-state evaluation technique.
	Strategy Strategy

	// Kernel is the incremental re-expression of Fn, required for
	// StrategyIncremental and rejected otherwise. The kernel is a manual
	// rewrite of Fn and is not mechanically guaranteed equivalent;
	// validate before trusting benchmarks built on it.
	Kernel Kernel[E, O]
}

// Compile produces the Rolled variant, failing fast on malformed
// parameters so that no benchmarking is attempted on a broken variant.
func (c Compiler[E, O]) Compile() (Rolled[E, O], error) {
	if c.Window < 1 {
		return nil, preconditionErrorf("window size %d, must be >= 1", c.Window)
	}
	if c.Fn == nil {
		return nil, compileErrorf("nil window function")
	}
	switch c.Strategy {
	case StrategyDirect:
		if c.Kernel != nil {
			return nil, preconditionErrorf("kernel provided but strategy is %s", c.Strategy)
		}
		return direct(c.Fn, c.Window), nil
	case StrategyWindowed:
		if c.Kernel != nil {
			return nil, preconditionErrorf("kernel provided but strategy is %s", c.Strategy)
		}
		return windowed(c.Fn, c.Window), nil
	case StrategyIncremental:
		if c.Kernel == nil {
			return nil, compileErrorf("strategy %s requires a kernel", c.Strategy)
		}
		return incremental(c.Fn, c.Kernel, c.Window), nil
	}
	return nil, preconditionErrorf("unknown strategy %d", c.Strategy)
}

// Roll compiles f with the direct strategy. Shorthand for the common
// ground-truth variant.
func Roll[E, O Float](f Func1D[E, O], n int) (Rolled[E, O], error) {
	return Compiler[E, O]{Fn: f, Window: n}.Compile()
}

func direct[E, O Float](f Func1D[E, O], n int) Rolled[E, O] {
	return func(xs []E) []O {
		out := make([]O, len(xs))
		for i := range xs {
			lo := i - n + 1
			if lo < 0 {
				lo = 0
			}
			out[i] = f(xs[lo : i+1])
		}
		return out
	}
}

func windowed[E, O Float](f Func1D[E, O], n int) Rolled[E, O] {
	return func(xs []E) []O {
		out := make([]O, len(xs))
		head := n - 1
		if head > len(xs) {
			head = len(xs)
		}
		for i := 0; i < head; i++ {
			out[i] = f(xs[:i+1])
		}
		for i := n - 1; i < len(xs); i++ {
			out[i] = f(xs[i-n+1 : i+1])
		}
		return out
	}
}

func incremental[E, O Float](f Func1D[E, O], k Kernel[E, O], n int) Rolled[E, O] {
	return func(xs []E) []O {
		out := make([]O, len(xs))

		// Partial windows have no prior full window to slide from, so
		// they always go through the direct path.
		head := n - 1
		if head > len(xs) {
			head = len(xs)
		}
		for i := 0; i < head; i++ {
			out[i] = f(xs[:i+1])
		}
		if len(xs) < n {
			return out
		}

		k.Reset()
		for i := 0; i < n; i++ {
			k.Push(xs[i])
		}
		out[n-1] = k.Value()
		for i := n; i < len(xs); i++ {
			k.Evict(xs[i-n])
			k.Push(xs[i])
			out[i] = k.Value()
		}
		return out
	}
}
