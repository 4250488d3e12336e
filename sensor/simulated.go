// Package sensor provides color sensors for running cells without hardware
package sensor

import (
	"math/rand"

	"github.com/lixenwraith/vaxcell/cell"
	"github.com/lixenwraith/vaxcell/parameter"
)

// Nominal readings of each piece, band centers of the default calibration
var nominal = map[cell.Label]cell.Sample{
	cell.LabelRed:   {R: 36, G: 9, B: 9},
	cell.LabelGreen: {R: 2, G: 27, B: 22},
	cell.LabelWhite: {R: 10, G: 19, B: 18},
}

// Nominal returns the noise-free reading of a piece
// ok is false for LabelIndeterminate, which has no piece
func Nominal(piece cell.Label) (cell.Sample, bool) {
	s, ok := nominal[piece]
	return s, ok
}

// Simulated produces jittery readings of whatever piece is placed on it
// With no piece it wanders around an ambient reading, which never settles
type Simulated struct {
	rng     *rand.Rand
	piece   cell.Label
	ambient cell.Sample
	jitter  float64
	drift   int
}

// NewSimulated creates a sensor with no piece placed
func NewSimulated(seed int64) *Simulated {
	return &Simulated{
		rng: rand.New(rand.NewSource(seed)),
		ambient: cell.Sample{
			R: parameter.AmbientSample[0],
			G: parameter.AmbientSample[1],
			B: parameter.AmbientSample[2],
		},
		jitter: parameter.SensorJitterChance,
		drift:  parameter.SensorAmbientDrift,
	}
}

// SetJitter overrides the per-channel wobble probability, 0 gives exact readings
func (s *Simulated) SetJitter(p float64) {
	s.jitter = p
}

// Place puts a piece on the sensor; LabelIndeterminate lifts it
func (s *Simulated) Place(piece cell.Label) {
	s.piece = piece
}

// Lift removes the piece
func (s *Simulated) Lift() {
	s.piece = cell.LabelIndeterminate
}

// Piece returns the piece currently placed
func (s *Simulated) Piece() cell.Label {
	return s.piece
}

// Read returns one noisy sample
func (s *Simulated) Read() cell.Sample {
	base, ok := nominal[s.piece]
	if !ok {
		return cell.Sample{
			R: clampChannel(s.ambient.R + s.rng.Intn(2*s.drift+1) - s.drift),
			G: clampChannel(s.ambient.G + s.rng.Intn(2*s.drift+1) - s.drift),
			B: clampChannel(s.ambient.B + s.rng.Intn(2*s.drift+1) - s.drift),
		}
	}
	return cell.Sample{
		R: clampChannel(base.R + s.wobble()),
		G: clampChannel(base.G + s.wobble()),
		B: clampChannel(base.B + s.wobble()),
	}
}

func (s *Simulated) wobble() int {
	if s.jitter <= 0 || s.rng.Float64() >= s.jitter {
		return 0
	}
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func clampChannel(v int) int {
	if v < parameter.ChannelMin {
		return parameter.ChannelMin
	}
	if v > parameter.ChannelMax {
		return parameter.ChannelMax
	}
	return v
}
