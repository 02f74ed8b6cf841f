// Package rolling compiles window functions into rolled variants that
// apply the function over every sliding window of a numeric series.
//
// A rolled variant maps an input of length m to an output of length m:
// output position i aggregates input positions max(0, i-n+1) through i
// for window size n. The first n-1 positions see a shorter window rather
// than padded or dropped data, and that boundary rule is identical across
// all strategies.
//
// Three steady-state strategies are provided: direct re-slicing (the
// ground truth), a windowed loop with boundary handling hoisted out, and
// an incremental strategy driven by a user Kernel that reuses the overlap
// between adjacent windows. Since a kernel is a manual rewrite of the
// window function, Validate cross-checks variants for near-equality
// before any of them is benchmarked.
package rolling
