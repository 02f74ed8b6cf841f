package rolling

// Float constrains the element and output types of rolled functions.
type Float interface {
	~float32 | ~float64
}

// Func1D maps a window of elements to a single value. The window passed in
// is a view into the caller's input and must not be retained or mutated.
//
// Windows shorter than the configured size are passed for the first
// positions of the input, so implementations should aggregate over the
// whole slice they receive rather than index fixed offsets.
type Func1D[E, O Float] func(window []E) O

// Rolled applies an underlying window function to every sliding window of
// its input, producing one output per input position.
type Rolled[E, O Float] func(xs []E) []O

// Kernel is an incremental re-expression of a window function: instead of
// recomputing over the full window, the kernel is updated as the window
// slides by one position. Push adds the newest element, Evict removes the
// element that just left the window, and Value reports the aggregate for
// the current window. Reset is called once before each pass.
//
// Kernels carry state between calls and are not safe for concurrent use.
type Kernel[E, O Float] interface {
	Reset()
	Push(x E)
	Evict(x E)
	Value() O
}

// Strategy selects how the steady-state region (positions with a full
// window) is evaluated. Positions before the first full window are always
// evaluated directly, whatever the strategy.
type Strategy int

const (
	// StrategyDirect re-slices the window and applies the function at
	// every position. Always correct; the ground truth for validation.
	StrategyDirect Strategy = iota

	// StrategyWindowed runs a single specialized steady-state loop. Same
	// function applications as direct, but with boundary handling hoisted
	// out of the hot loop.
	StrategyWindowed

	// StrategyIncremental maintains a user-supplied Kernel across
	// adjacent windows, reusing their overlap.
	StrategyIncremental
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyWindowed:
		return "windowed"
	case StrategyIncremental:
		return "incremental"
	}
	return "unknown"
}
