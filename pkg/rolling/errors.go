package rolling

import "fmt"

// CompileError reports that a window function could not be specialized
// into a Rolled variant, e.g. a nil function or a kernel paired with a
// strategy that cannot use it.
type CompileError struct {
	Reason string
}

func (e *CompileError) Error() string {
	return "compile error: " + e.Reason
}

func compileErrorf(format string, args ...interface{}) error {
	return &CompileError{Reason: fmt.Sprintf(format, args...)}
}

// PreconditionError reports malformed parameters, e.g. a window size
// below one.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

func preconditionErrorf(format string, args ...interface{}) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}

// MismatchError reports the first disagreement between two variants that
// are expected to implement the same windowing contract.
type MismatchError struct {
	Ref   string
	Label string
	Index int
	Want  float64
	Got   float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("rolling: variant %q disagrees with %q at index %d: %v != %v",
		e.Label, e.Ref, e.Index, e.Got, e.Want)
}
