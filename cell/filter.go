package cell

// Filter debounces raw samples over a trailing window
// Samples are stored whole in a ring so the three channels can never drift apart
type Filter struct {
	ring         []Sample
	head         int // next write slot
	seen         int // samples observed, saturates at len(ring)+1
	maxVariation int
	runLength    int
}

// NewFilter creates a filter with the given window size and noise budget
// window must be >= 1; config validation guarantees it
func NewFilter(window, maxVariation int) *Filter {
	return &Filter{
		ring:         make([]Sample, window),
		maxVariation: maxVariation,
	}
}

// Observe records s and reports whether the trailing window is stable
// Needs window+1 observations before it can report stable
func (f *Filter) Observe(s Sample) bool {
	f.ring[f.head] = s
	f.head = (f.head + 1) % len(f.ring)
	if f.seen <= len(f.ring) {
		f.seen++
	}
	if f.seen < len(f.ring)+1 {
		return false
	}

	if f.Variation() <= f.maxVariation {
		f.runLength++
		return true
	}
	f.runLength = 0
	return false
}

// Variation counts adjacent-sample channel changes over the retained window
func (f *Filter) Variation() int {
	n := f.Len()
	if n < 2 {
		return 0
	}

	// Oldest retained sample sits at head once the ring is full
	start := (f.head - n + len(f.ring)) % len(f.ring)
	prev := f.ring[start]
	diff := 0
	for i := 1; i < n; i++ {
		cur := f.ring[(start+i)%len(f.ring)]
		if cur.R != prev.R {
			diff++
		}
		if cur.G != prev.G {
			diff++
		}
		if cur.B != prev.B {
			diff++
		}
		prev = cur
	}
	return diff
}

// Len is the number of retained samples, at most the window size
func (f *Filter) Len() int {
	return min(f.seen, len(f.ring))
}

// Window is the configured capacity
func (f *Filter) Window() int {
	return len(f.ring)
}

// RunLength is the number of consecutive stable observations, diagnostics only
func (f *Filter) RunLength() int {
	return f.runLength
}

// Reset discards history and the run-length counter
func (f *Filter) Reset() {
	clear(f.ring)
	f.head = 0
	f.seen = 0
	f.runLength = 0
}
