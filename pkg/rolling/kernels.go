package rolling

// SumKernel is the incremental form of a windowed sum: a running
// accumulator updated in O(1) per slide.
//
// Repeated add/subtract accumulates float rounding relative to a fresh
// per-window sum, which is why incremental variants go through Validate
// with a tolerance rather than exact comparison.
type SumKernel[E, O Float] struct {
	sum O
}

func (k *SumKernel[E, O]) Reset()    { k.sum = 0 }
func (k *SumKernel[E, O]) Push(x E)  { k.sum += O(x) }
func (k *SumKernel[E, O]) Evict(x E) { k.sum -= O(x) }
func (k *SumKernel[E, O]) Value() O  { return k.sum }

// MeanKernel is the incremental form of a windowed mean.
type MeanKernel[E, O Float] struct {
	sum   O
	count int
}

func (k *MeanKernel[E, O]) Reset() {
	k.sum = 0
	k.count = 0
}

func (k *MeanKernel[E, O]) Push(x E) {
	k.sum += O(x)
	k.count++
}

func (k *MeanKernel[E, O]) Evict(x E) {
	k.sum -= O(x)
	k.count--
}

func (k *MeanKernel[E, O]) Value() O {
	if k.count == 0 {
		return 0
	}
	return k.sum / O(k.count)
}
