package collection

import "github.com/pkg/errors"

// Node is a DAG node with the IDs it depends on.
type Node[T comparable] struct {
	ID        T
	DependsOn []T
}

// TopologicalSort orders node IDs so that every node appears after all of
// its dependencies, e.g. packages in installation order. The order is not
// unique. A dependency cycle, or a dependency on an unknown node, leaves
// nodes unconsumable and is reported as an error.
func TopologicalSort[T comparable](nodes []Node[T]) ([]T, error) {
	order, err := FoldQStrict(
		func(acc []T, n Node[T]) []T {
			return append(acc, n.ID)
		},
		func(acc []T, n Node[T], rest []Node[T]) []Node[T] {
			for i := range rest {
				rest[i].DependsOn = remove(rest[i].DependsOn, n.ID)
			}
			return rest
		},
		func(n Node[T]) bool {
			return len(n.DependsOn) == 0
		},
		nodes, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dependency cycle or unknown dependency")
	}
	return order, nil
}

// remove copies rather than filtering in place; the input slices belong
// to the caller's nodes.
func remove[T comparable](xs []T, x T) []T {
	out := make([]T, 0, len(xs))
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}
