// Package audio synthesizes short cues for cell transitions and plays them with beep
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vaxcell/cell"
	"github.com/lixenwraith/vaxcell/parameter"
)

// Cue identifies a transition sound
type Cue int

const (
	CueNone Cue = iota
	CueInfected
	CueInoculate
	CueImmune
	CueRevert
)

// CueFor picks the sound for a transition; fading back to healthy is silent
func CueFor(tr cell.Transition) Cue {
	switch tr.To {
	case cell.StatusInfected:
		return CueInfected
	case cell.StatusInoculating:
		return CueInoculate
	case cell.StatusImmune:
		return CueImmune
	case cell.StatusReverting:
		return CueRevert
	case cell.StatusHealthy:
		if tr.Reason == cell.ReasonTreatmentRemoved {
			return CueRevert
		}
	}
	return CueNone
}

// NewCue builds the streamer for a cue at the given rate and linear volume
// Returns nil for CueNone
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueInfected:
		s = tone(parameter.InfectedCueFreq, parameter.InfectedCueDuration, WaveSaw, rate)
	case CueInoculate:
		s = tone(parameter.InoculateCueFreq, parameter.InoculateCueDuration, WaveSine, rate)
	case CueImmune:
		s = beep.Seq(
			tone(parameter.ImmuneCueNote1Freq, parameter.ImmuneCueNoteDuration, WaveSine, rate),
			tone(parameter.ImmuneCueNote2Freq, parameter.ImmuneCueNote2Duration, WaveSine, rate),
		)
	case CueRevert:
		s = tone(parameter.RevertCueFreq, parameter.RevertCueDuration, WaveSquare, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, parameter.CueAttack, parameter.CueRelease, rate)
}
