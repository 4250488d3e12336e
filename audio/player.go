package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vaxcell/cell"
	"github.com/lixenwraith/vaxcell/config"
	"github.com/lixenwraith/vaxcell/parameter"
)

// Player is a cell sink that plays a cue for every transition
// Before Start, or when disabled, it only counts cues
type Player struct {
	mu          sync.Mutex
	cfg         config.Audio
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	played      map[Cue]int
}

// NewPlayer creates an idle player
func NewPlayer(cfg config.Audio) *Player {
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
	}
}

// Start opens the audio device; a disabled player returns nil without touching it
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferSize)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop silences pending cues
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) Emit(e cell.Event) {
	if e.Kind != cell.KindTransition || e.Transition == nil {
		return
	}
	cue := CueFor(*e.Transition)
	if cue == CueNone {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[cue]++
	if !p.initialized {
		return
	}
	s := NewCue(cue, p.rate, p.cfg.Volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times a cue was requested
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}
