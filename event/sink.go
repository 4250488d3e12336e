// Package event provides sinks for cell events: verbosity gating, fan-out,
// log output and a bounded queue for display consumers
package event

import (
	"github.com/lixenwraith/vaxcell/cell"
)

// Filter forwards events whose level is within the configured verbosity
// Verbosity 0 forwards nothing
type Filter struct {
	Verbosity cell.Level
	Next      cell.Sink
}

// NewFilter gates next at the given verbosity
func NewFilter(verbosity int, next cell.Sink) *Filter {
	return &Filter{Verbosity: cell.Level(verbosity), Next: next}
}

func (f *Filter) Emit(e cell.Event) {
	if f.Verbosity == cell.LevelSilent || e.Level > f.Verbosity {
		return
	}
	f.Next.Emit(e)
}

// Fanout delivers each event to every sink in order
type Fanout []cell.Sink

func (s Fanout) Emit(e cell.Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Emit(e)
		}
	}
}

// TransitionsOnly forwards transition events regardless of verbosity
// Used for consumers that react to state changes, not diagnostics
type TransitionsOnly struct {
	Next cell.Sink
}

func (t TransitionsOnly) Emit(e cell.Event) {
	if e.Kind == cell.KindTransition && e.Transition != nil {
		t.Next.Emit(e)
	}
}
