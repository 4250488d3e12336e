// Package cell implements one sensor+light game cell: a debounced color
// classifier feeding a timed state machine that renders the light color
package cell

import (
	"fmt"
	"time"
)

// Sample is one raw sensor reading, channels in raw sensor units
type Sample struct {
	R, G, B int
}

func (s Sample) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.R, s.G, s.B)
}

// Label is the debounced classification of the piece on a sensor
type Label uint8

const (
	LabelIndeterminate Label = iota
	LabelRed
	LabelGreen
	LabelWhite
)

var labelNames = [...]string{"invalid", "red", "green", "white"}

func (l Label) String() string {
	if int(l) < len(labelNames) {
		return labelNames[l]
	}
	return labelNames[LabelIndeterminate]
}

// IsTreatment reports Green and White, which act identically
func (l Label) IsTreatment() bool {
	return l == LabelGreen || l == LabelWhite
}

// Piece is the game name of the physical piece behind a label
func (l Label) Piece() string {
	switch l {
	case LabelRed:
		return "virus piece"
	case LabelGreen:
		return "deactivated virus vaccine"
	case LabelWhite:
		return "mRNA messenger piece"
	default:
		return "no piece"
	}
}

// Status is the biological phase of a cell
type Status uint8

const (
	StatusHealthy Status = iota
	StatusInfected
	StatusInoculating
	StatusImmune
	StatusReverting
)

var statusNames = [...]string{"healthy", "infected", "inoculating", "immune", "reverting"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", s)
}

// Timed reports the transient statuses that carry an origin and a start time
func (s Status) Timed() bool {
	return s == StatusInoculating || s == StatusReverting
}

// Phase bundles status, origin and timer so a transition replaces all of them at once
// From and Started are zero unless Status is timed
type Phase struct {
	Status  Status
	From    Status
	Started time.Time
}

// Resting returns a phase with no origin and no timer
func Resting(s Status) Phase {
	return Phase{Status: s}
}

// Transitioning returns a timed phase started at the given instant
func Transitioning(s Status, from Status, at time.Time) Phase {
	return Phase{Status: s, From: from, Started: at}
}

// Elapsed is the time since the phase timer started
// An unset timer or a clock reading before the start counts as just started
func (p Phase) Elapsed(now time.Time) time.Duration {
	if !p.Status.Timed() || p.Started.IsZero() {
		return 0
	}
	d := now.Sub(p.Started)
	if d < 0 {
		return 0
	}
	return d
}

func (p Phase) String() string {
	if p.Status.Timed() {
		return fmt.Sprintf("%s(from %s)", p.Status, p.From)
	}
	return p.Status.String()
}
