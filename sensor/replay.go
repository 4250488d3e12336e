package sensor

import (
	"github.com/lixenwraith/vaxcell/cell"
)

// Replay returns a fixed sequence of samples, then repeats the last one
type Replay struct {
	samples []cell.Sample
	pos     int
}

// NewReplay replays samples in order; an empty sequence reads as black
func NewReplay(samples ...cell.Sample) *Replay {
	return &Replay{samples: samples}
}

// Hold appends n copies of s
func (r *Replay) Hold(s cell.Sample, n int) *Replay {
	for i := 0; i < n; i++ {
		r.samples = append(r.samples, s)
	}
	return r
}

func (r *Replay) Read() cell.Sample {
	if len(r.samples) == 0 {
		return cell.Sample{}
	}
	s := r.samples[min(r.pos, len(r.samples)-1)]
	if r.pos < len(r.samples) {
		r.pos++
	}
	return s
}

// Remaining is the number of samples not yet read
func (r *Replay) Remaining() int {
	return len(r.samples) - r.pos
}
