package parameter

import (
	"time"
)

// Cell Defaults
const (
	// ColorSensitivity widens every tolerance band by this many raw units on each side
	ColorSensitivity = 1

	// MaxVariation is the noise budget: adjacent-sample changes tolerated across the window
	MaxVariation = 5

	// CertaintyLevel is the consistency window size in samples
	// Higher values ignore more ambient light when no piece is placed
	CertaintyLevel = 6

	// InoculationDuration is the time a treatment piece must stay on a cell to immunize it
	InoculationDuration = 2 * time.Second

	// ImmuneFadeDuration is the time an immune cell takes to fade back to healthy
	ImmuneFadeDuration = 6 * time.Second

	// FadeFloor is the starting level of the reverting fade
	// Lower values keep the green tint on longer
	FadeFloor = 0.1
)

// Sensor raw channel bounds (color_rgb_bytes)
const (
	ChannelMin = 0
	ChannelMax = 255
)

// Tolerance bands before widening, inclusive, per channel R,G,B
var (
	RedBand   = [3][2]int{{30, 42}, {8, 10}, {8, 10}}
	GreenBand = [3][2]int{{0, 4}, {25, 30}, {17, 28}}
	WhiteBand = [3][2]int{{10, 10}, {18, 20}, {15, 21}}
)
