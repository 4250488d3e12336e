package cell

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vaxcell/config"
)

// Resting colors
var (
	ColorHealthy  = colorful.Color{R: 1, G: 1, B: 1}
	ColorInfected = colorful.Color{R: 1, G: 0, B: 0}
	ColorImmune   = colorful.Color{R: 0, G: 1, B: 0}
)

// RestingColor is the steady light color of a status
// Timed statuses fall back to the color of the status they are leaving
func RestingColor(s Status) colorful.Color {
	switch s {
	case StatusInfected:
		return ColorInfected
	case StatusImmune, StatusReverting:
		return ColorImmune
	default:
		return ColorHealthy
	}
}

// Render computes the light color for a phase at instant now
// The result depends only on status, origin and elapsed time
func Render(cfg *config.Config, p Phase, now time.Time) colorful.Color {
	switch p.Status {
	case StatusInoculating:
		t := clamp01(progress(p.Elapsed(now), cfg.InoculationDuration))
		if p.From == StatusInfected {
			// Red toward green
			return colorful.Color{R: 1 - t, G: t, B: 0}
		}
		// White toward green
		return colorful.Color{R: 1 - t, G: 1, B: 1 - t}

	case StatusReverting:
		t := progress(p.Elapsed(now), cfg.ImmuneFadeDuration)
		if t >= 1 {
			return ColorHealthy
		}
		level := FadeLevel(cfg.FadeFloor, clamp01(t))
		return colorful.Color{R: level, G: 1, B: level}

	default:
		return RestingColor(p.Status)
	}
}

// FadeLevel is floor*exp(k*t) with k = ln(1/floor): floor at t=0, 1 at t=1
func FadeLevel(floor, t float64) float64 {
	k := math.Log(1 / floor)
	return floor * math.Exp(k*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
