package cell

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vaxcell/config"
)

// Sensor yields raw color samples; Read is called once per tick
type Sensor interface {
	Read() Sample
}

// Light is the indicator driven by a cell
type Light interface {
	SetColor(c colorful.Color)
	TurnOn()
	IsOn() bool
}

// Cell owns one sensor and one light exclusively
// Not safe for concurrent use; poll every cell from a single goroutine
type Cell struct {
	id     int
	cfg    *config.Config
	sensor Sensor
	light  Light
	sink   Sink

	filter     *Filter
	classifier Classifier

	phase     Phase
	lastLabel Label
}

// New creates a healthy cell with its light off
// sink may be nil
func New(id int, cfg *config.Config, sensor Sensor, light Light, sink Sink) (*Cell, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cell %d: nil config", id)
	}
	if sensor == nil || light == nil {
		return nil, fmt.Errorf("cell %d: sensor and light are required", id)
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("cell %d: %w", id, err)
	}
	if err := cfg.Bands.Validate(); err != nil {
		return nil, fmt.Errorf("cell %d: %w", id, err)
	}
	if sink == nil {
		sink = Discard
	}

	light.SetColor(colorful.Color{})

	return &Cell{
		id:         id,
		cfg:        cfg,
		sensor:     sensor,
		light:      light,
		sink:       sink,
		filter:     NewFilter(cfg.CertaintyLevel, cfg.MaxVariation),
		classifier: NewClassifier(cfg.Bands),
		phase:      Resting(StatusHealthy),
	}, nil
}

// Update runs one polling tick: read, debounce, classify, step and render
// Returns the transition record when the status changed
func (c *Cell) Update(now time.Time) (Transition, bool) {
	sample := c.sensor.Read()
	c.sink.Emit(Event{
		Cell:   c.id,
		Kind:   KindSample,
		Level:  LevelRaw,
		Detail: fmt.Sprintf("%s [%s]", sample, c.lastLabel),
	})

	label := c.Observe(sample)

	next, tr, changed := Step(c.cfg, c.phase, label, now)
	c.phase = next
	if changed {
		tr.Cell = c.id
		c.sink.Emit(Event{
			Cell:       c.id,
			Kind:       KindTransition,
			Level:      LevelEvents,
			Detail:     describe(tr),
			Transition: &tr,
		})
	}

	if c.phase.Status == StatusHealthy && !c.light.IsOn() {
		c.light.TurnOn()
	}
	c.light.SetColor(Render(c.cfg, c.phase, now))

	return tr, changed
}

// Observe feeds a sample through the filter and classifier and returns the debounced label
// Unstable readings are indeterminate regardless of their color
func (c *Cell) Observe(s Sample) Label {
	label := LabelIndeterminate
	if c.filter.Observe(s) {
		label = c.classifier.Classify(s)
		if label != LabelIndeterminate && c.filter.RunLength() == c.cfg.CertaintyLevel {
			c.sink.Emit(Event{
				Cell:   c.id,
				Kind:   KindDetected,
				Level:  LevelEvents,
				Detail: fmt.Sprintf("S%d detected %s", c.id, label.Piece()),
			})
		}
	}
	c.lastLabel = label
	return label
}

func describe(tr Transition) string {
	switch tr.Reason {
	case ReasonPathogen, ReasonReinfected:
		return fmt.Sprintf("Cell %d is now infected.", tr.Cell)
	case ReasonTreatment:
		return fmt.Sprintf("Cell %d is being inoculated.", tr.Cell)
	case ReasonInoculated:
		return fmt.Sprintf("Cell %d is now immunized.", tr.Cell)
	case ReasonFadeComplete:
		return fmt.Sprintf("Cell %d reset to healthy.", tr.Cell)
	case ReasonTreatmentRemoved:
		if tr.From == StatusImmune {
			return fmt.Sprintf("Cell %d is losing immunity.", tr.Cell)
		}
		return fmt.Sprintf("Cell %d reverting back to %s.", tr.Cell, tr.To)
	default:
		return fmt.Sprintf("Cell %d %s -> %s.", tr.Cell, tr.From, tr.To)
	}
}

func (c *Cell) ID() int                { return c.id }
func (c *Cell) Phase() Phase           { return c.phase }
func (c *Cell) Status() Status         { return c.phase.Status }
func (c *Cell) LastLabel() Label       { return c.lastLabel }
func (c *Cell) RunLength() int         { return c.filter.RunLength() }
func (c *Cell) Filter() *Filter        { return c.filter }
func (c *Cell) Config() *config.Config { return c.cfg }
