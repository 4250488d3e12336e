package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/vaxcell/cell"
)

// Metric keys
const (
	KeyTransitions = "transitions"
	KeyDetections  = "detections"
	KeySamples     = "samples"
)

// CellStatusKey is the text metric holding a cell's current status
func CellStatusKey(id int) string {
	return fmt.Sprintf("cell.%d.status", id)
}

// ReasonKey counts transitions by reason
func ReasonKey(r cell.Reason) string {
	return "transitions." + string(r)
}

// Recorder is a sink that folds cell events into a registry
// Attach it before any verbosity filter so counts do not depend on the log level
type Recorder struct {
	reg         *Registry
	transitions *atomic.Int64
	detections  *atomic.Int64
	samples     *atomic.Int64
}

// NewRecorder records into reg
func NewRecorder(reg *Registry) *Recorder {
	return &Recorder{
		reg:         reg,
		transitions: reg.Counter(KeyTransitions),
		detections:  reg.Counter(KeyDetections),
		samples:     reg.Counter(KeySamples),
	}
}

func (r *Recorder) Emit(e cell.Event) {
	switch e.Kind {
	case cell.KindSample:
		r.samples.Add(1)
	case cell.KindDetected:
		r.detections.Add(1)
	case cell.KindTransition:
		r.transitions.Add(1)
		if tr := e.Transition; tr != nil {
			r.reg.Counter(ReasonKey(tr.Reason)).Add(1)
			r.reg.Text(CellStatusKey(tr.Cell)).Store(tr.To.String())
		}
	}
}

// Seed publishes the initial status of a cell before its first transition
func (r *Recorder) Seed(id int, s cell.Status) {
	r.reg.Text(CellStatusKey(id)).Store(s.String())
}
