// Package collection provides generic slice and map helpers: flattening,
// zipping and merging, grouping and partitioning, a condition-driven
// consumption fold with a topological sort built on it, order-preserving
// uniqueness, interspersal, and several batching schemes.
package collection
