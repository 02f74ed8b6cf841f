package collection

import (
	"container/heap"
	"sort"

	"github.com/pkg/errors"
)

// Chunk splits xs into batches of n elements, the last one possibly
// shorter. Batches are subslices of xs, not copies.
func Chunk[T any](xs []T, n int) [][]T {
	if n < 1 || len(xs) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(xs)+n-1)/n)
	for lo := 0; lo < len(xs); lo += n {
		hi := lo + n
		if hi > len(xs) {
			hi = len(xs)
		}
		out = append(out, xs[lo:hi])
	}
	return out
}

// ChunkInto splits xs into k batches of roughly equal length, the last
// one possibly shorter.
func ChunkInto[T any](xs []T, k int) [][]T {
	if k < 1 {
		return nil
	}
	return Chunk(xs, (len(xs)+k-1)/k)
}

// WeightedBatch is a batch annotated with its total weight.
type WeightedBatch[T any] struct {
	Total float64
	Items []T
}

// BatchByWeight batches xs so that no batch's total weight exceeds max,
// preserving order. An element heavier than max still gets a batch of its
// own rather than being dropped.
func BatchByWeight[T any](xs []T, by func(T) float64, max float64) []WeightedBatch[T] {
	var out []WeightedBatch[T]
	var cur WeightedBatch[T]
	for _, x := range xs {
		w := by(x)
		if len(cur.Items) > 0 && cur.Total+w > max {
			out = append(out, cur)
			cur = WeightedBatch[T]{}
		}
		cur.Items = append(cur.Items, x)
		cur.Total += w
	}
	if len(cur.Items) > 0 {
		out = append(out, cur)
	}
	return out
}

// BatchIntoByWeight splits xs into k batches of roughly equal total
// weight. With balanced set, elements are greedily assigned heaviest
// first to the lightest batch so far: totals come out near-optimal but
// input order is lost, and batches are returned lightest first. Without
// it, order is preserved by cutting at the average weight, which may
// produce more than k batches.
func BatchIntoByWeight[T any](xs []T, by func(T) float64, k int, balanced bool) ([]WeightedBatch[T], error) {
	if k < 1 {
		return nil, errors.Errorf("requested %d batches, must be >= 1", k)
	}
	if k > len(xs) {
		return nil, errors.Errorf("requested %d batches for %d elements", k, len(xs))
	}

	if !balanced {
		var total float64
		for _, x := range xs {
			total += by(x)
		}
		return BatchByWeight(xs, by, total/float64(k)), nil
	}

	h := make(batchHeap[T], 0, k)
	for i := 0; i < k; i++ {
		h = append(h, &WeightedBatch[T]{})
	}
	heap.Init(&h)

	sorted := make([]T, len(xs))
	copy(sorted, xs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return by(sorted[i]) > by(sorted[j])
	})
	for _, x := range sorted {
		b := h[0]
		b.Total += by(x)
		b.Items = append(b.Items, x)
		heap.Fix(&h, 0)
	}

	out := make([]WeightedBatch[T], 0, k)
	for h.Len() > 0 {
		out = append(out, *heap.Pop(&h).(*WeightedBatch[T]))
	}
	return out, nil
}

type batchHeap[T any] []*WeightedBatch[T]

func (h batchHeap[T]) Len() int           { return len(h) }
func (h batchHeap[T]) Less(i, j int) bool { return h[i].Total < h[j].Total }
func (h batchHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *batchHeap[T]) Push(x interface{}) { *h = append(*h, x.(*WeightedBatch[T])) }
func (h *batchHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
