package cell

import (
	"math"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vaxcell/config"
)

var (
	sampleRed     = Sample{R: 35, G: 9, B: 9}
	sampleGreen   = Sample{R: 2, G: 27, B: 22}
	sampleWhite   = Sample{R: 10, G: 19, B: 18}
	sampleAmbient = Sample{R: 60, G: 70, B: 58}
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type stubSensor struct {
	sample Sample
	reads  int
}

func (s *stubSensor) Read() Sample {
	s.reads++
	return s.sample
}

type stubLight struct {
	color colorful.Color
	on    bool
	sets  int
}

func (l *stubLight) SetColor(c colorful.Color) {
	l.color = c
	l.sets++
}
func (l *stubLight) TurnOn()    { l.on = true }
func (l *stubLight) IsOn() bool { return l.on }

type recordSink struct {
	events []Event
}

func (r *recordSink) Emit(e Event) { r.events = append(r.events, e) }

func (r *recordSink) ofKind(k Kind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// testConfig uses a short window and zero noise budget so every piece change costs exactly window ticks
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.CertaintyLevel = 2
	cfg.MaxVariation = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return cfg
}

func newTestCell(t *testing.T, cfg *config.Config) (*Cell, *stubSensor, *stubLight, *recordSink) {
	t.Helper()
	sensor := &stubSensor{sample: sampleAmbient}
	light := &stubLight{}
	sink := &recordSink{}
	c, err := New(1, cfg, sensor, light, sink)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, sensor, light, sink
}

func assertColor(t *testing.T, got, want colorful.Color) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps || math.Abs(got.B-want.B) > eps {
		t.Errorf("color mismatch: got (%.4f,%.4f,%.4f), want (%.4f,%.4f,%.4f)",
			got.R, got.G, got.B, want.R, want.G, want.B)
	}
}

func assertStatus(t *testing.T, c *Cell, want Status) {
	t.Helper()
	if got := c.Status(); got != want {
		t.Fatalf("expected status %s, got %s", want, got)
	}
}
