package advanced

// Degrees in a full rotation. Angles are sampled over [0, FullTurn).
const FullTurn = 360.0

// Evenly spaced ray angles over one full rotation. The i-th angle always
// belongs to the i-th ray of a cast, so the sampler is deterministic and
// never reorders anything.
type AngleSampler struct {
	count int
}

func NewAngleSampler(count int) AngleSampler {
	if count < 1 {
		fatalf("ray count must be at least 1, got %d", count)
	}
	return AngleSampler{count}
}

func (s AngleSampler) Len() int {
	return s.count
}

// The angle in degrees of the i-th ray. Computed from the index rather than by
// accumulating a step, so that float error does not drift across the sweep.
func (s AngleSampler) At(i int) float64 {
	if i < 0 || i >= s.count {
		fatalf("angle index %d out of range [0, %d)", i, s.count)
	}
	return float64(i) * FullTurn / float64(s.count)
}

// Start a fresh pass over the angles. Iterators are independent, so the
// sequence can be restarted any number of times.
func (s AngleSampler) Iterate() *AngleIterator {
	return &AngleIterator{sampler: s}
}

type AngleIterator struct {
	sampler AngleSampler
	next    int
}

// Returns the next index and angle, or ok == false once the sweep is done.
func (iter *AngleIterator) Next() (index int, angle float64, ok bool) {
	if iter.next >= iter.sampler.count {
		return 0, 0, false
	}
	index = iter.next
	iter.next++
	return index, iter.sampler.At(index), true
}
