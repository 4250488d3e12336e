package cell

import (
	"time"
)

// Level is the verbosity an event requires to be emitted
type Level uint8

const (
	LevelSilent Level = iota
	LevelEvents
	LevelRaw
)

// Kind classifies emitted events
type Kind uint8

const (
	KindSample Kind = iota
	KindDetected
	KindTransition
)

var kindNames = [...]string{"sample", "detected", "transition"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Reason explains why a transition fired
type Reason string

const (
	ReasonPathogen         Reason = "pathogen"
	ReasonTreatment        Reason = "treatment"
	ReasonTreatmentRemoved Reason = "treatment_removed"
	ReasonInoculated       Reason = "inoculated"
	ReasonReinfected       Reason = "reinfected"
	ReasonFadeComplete     Reason = "fade_complete"
)

// Transition is the record of one status change, produced by Step
type Transition struct {
	Cell   int
	From   Status
	To     Status
	Label  Label
	Reason Reason
	At     time.Time
}

// Event is what a cell hands to its sink; Transition is set for KindTransition only
type Event struct {
	Cell       int
	Kind       Kind
	Level      Level
	Detail     string
	Transition *Transition
}

// Sink receives cell events; implementations decide what to keep
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

type discard struct{}

func (discard) Emit(Event) {}

// Discard drops every event
var Discard Sink = discard{}
