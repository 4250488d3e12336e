package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vaxcell/cell"
	"github.com/lixenwraith/vaxcell/config"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns all left-channel samples
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate)
		samples := drain(osc)
		if len(samples) != testRate.N(50*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, testRate.N(50*time.Millisecond), len(samples))
		}
		for i, v := range samples {
			if v < -1 || v > 1 {
				t.Fatalf("wave %d: sample %d out of range: %f", wave, i, v)
			}
		}
		if osc.Err() != nil {
			t.Errorf("unexpected error: %v", osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	for i, v := range drain(NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate)) {
		if v != 1 && v != -1 {
			t.Fatalf("square sample %d should be +-1, got %f", i, v)
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	samples := drain(env)

	if samples[0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0])
	}
	if mid := samples[len(samples)/2]; mid != 1 {
		t.Errorf("sustain should be full volume, got %f", mid)
	}
	if last := samples[len(samples)-1]; last <= 0 || last > 0.01 {
		t.Errorf("release should end near zero, got %f", last)
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		tr   cell.Transition
		want Cue
	}{
		{cell.Transition{To: cell.StatusInfected, Reason: cell.ReasonPathogen}, CueInfected},
		{cell.Transition{To: cell.StatusInfected, Reason: cell.ReasonReinfected}, CueInfected},
		{cell.Transition{To: cell.StatusInoculating}, CueInoculate},
		{cell.Transition{To: cell.StatusImmune}, CueImmune},
		{cell.Transition{To: cell.StatusReverting}, CueRevert},
		{cell.Transition{To: cell.StatusHealthy, Reason: cell.ReasonTreatmentRemoved}, CueRevert},
		{cell.Transition{To: cell.StatusHealthy, Reason: cell.ReasonFadeComplete}, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.tr); got != tt.want {
			t.Errorf("CueFor(%s/%s) = %d, want %d", tt.tr.To, tt.tr.Reason, got, tt.want)
		}
	}
}

func TestNewCueLengths(t *testing.T) {
	if NewCue(CueNone, testRate, 1) != nil {
		t.Error("CueNone has no streamer")
	}

	immune := drain(NewCue(CueImmune, testRate, 1))
	want := testRate.N(120*time.Millisecond) + testRate.N(240*time.Millisecond)
	if len(immune) != want {
		t.Errorf("immune chime: expected %d samples, got %d", want, len(immune))
	}

	for _, v := range drain(NewCue(CueInfected, testRate, 0)) {
		if v != 0 {
			t.Fatalf("zero volume should be silent, got %f", v)
		}
	}

	loud := drain(NewCue(CueRevert, testRate, 1))
	quiet := drain(NewCue(CueRevert, testRate, 0.5))
	i := len(loud) / 2
	if math.Abs(quiet[i]-loud[i]*0.5) > 1e-9 {
		t.Errorf("half volume should halve the amplitude: %f vs %f", quiet[i], loud[i])
	}
}

func TestPlayerCountsWithoutDevice(t *testing.T) {
	p := NewPlayer(config.Audio{Enabled: false, Volume: 0.5})
	if err := p.Start(); err != nil {
		t.Fatalf("disabled player should start without a device: %v", err)
	}

	p.Emit(cell.Event{Kind: cell.KindSample})
	p.Emit(cell.Event{Kind: cell.KindTransition, Transition: &cell.Transition{To: cell.StatusImmune}})
	p.Emit(cell.Event{Kind: cell.KindTransition, Transition: &cell.Transition{To: cell.StatusImmune}})
	p.Emit(cell.Event{Kind: cell.KindTransition, Transition: &cell.Transition{To: cell.StatusHealthy, Reason: cell.ReasonFadeComplete}})

	if got := p.Played(CueImmune); got != 2 {
		t.Errorf("expected 2 immune cues, got %d", got)
	}
	if got := p.Played(CueNone); got != 0 {
		t.Errorf("silent transitions should not count, got %d", got)
	}
	p.Stop()
}
