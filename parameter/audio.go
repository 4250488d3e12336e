package parameter

import (
	"time"
)

// Audio
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond
	AudioVolume     = 0.6

	// Infection cue: low saw buzz
	InfectedCueFreq     = 110.0
	InfectedCueDuration = 250 * time.Millisecond

	// Inoculation start: short sine blip
	InoculateCueFreq     = 660.0
	InoculateCueDuration = 80 * time.Millisecond

	// Immunized: two-note rising chime
	ImmuneCueNote1Freq     = 880.0
	ImmuneCueNote2Freq     = 1318.51
	ImmuneCueNoteDuration  = 120 * time.Millisecond
	ImmuneCueNote2Duration = 240 * time.Millisecond

	// Leaving immunity or losing the treatment: short square blip
	RevertCueFreq     = 440.0
	RevertCueDuration = 100 * time.Millisecond

	CueAttack  = 5 * time.Millisecond
	CueRelease = 60 * time.Millisecond
)
