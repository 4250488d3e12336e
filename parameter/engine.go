package parameter

import (
	"time"
)

// Poll Loop Timing
const (
	// PollInterval is the sensor polling tick for every cell
	PollInterval = 50 * time.Millisecond

	// FrameUpdateInterval is the panel redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// DefaultCellCount matches a single game board row
	DefaultCellCount = 4

	// MaxCellCount is bounded by the number keys used to select a cell
	MaxCellCount = 9
)

// Simulated sensor noise
const (
	// SensorJitterChance is the per-channel probability of a one-unit wobble
	SensorJitterChance = 0.05

	// SensorAmbientDrift is the max per-channel swing of ambient light with no piece placed
	SensorAmbientDrift = 6
)

// Ambient reading with no piece on the sensor
var AmbientSample = [3]int{60, 70, 58}
