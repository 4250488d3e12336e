package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vaxcell/audio"
	"github.com/lixenwraith/vaxcell/cell"
	"github.com/lixenwraith/vaxcell/config"
	"github.com/lixenwraith/vaxcell/engine"
	"github.com/lixenwraith/vaxcell/event"
	"github.com/lixenwraith/vaxcell/render"
	"github.com/lixenwraith/vaxcell/sensor"
	"github.com/lixenwraith/vaxcell/status"
)

// app is the single-goroutine runtime: every field is touched only by the main loop
type app struct {
	cfg      *config.Config
	panel    *render.Panel
	sensors  []*sensor.Simulated
	poller   *engine.Poller
	registry *status.Registry
	queue    *event.Queue
	player   *audio.Player
}

// newApp builds n simulated cells drawn on screen, polled every tick
// Sensor seeds are consecutive from seed so runs are reproducible
func newApp(cfg *config.Config, screen tcell.Screen, clock engine.Clock, tick time.Duration, n int, seed int64) (*app, error) {
	if tick <= 0 {
		return nil, fmt.Errorf("tick must be positive, got %v", tick)
	}

	a := &app{
		cfg:      cfg,
		panel:    render.NewPanel(screen, n),
		registry: status.NewRegistry(),
		queue:    event.NewQueue(64),
		player:   audio.NewPlayer(cfg.Audio),
	}
	a.panel.SetRegistry(a.registry)

	recorder := status.NewRecorder(a.registry)
	sink := event.Fanout{
		recorder,
		event.NewFilter(config.VerbosityEvents, a.queue),
		event.NewFilter(cfg.Verbosity, event.NewLog(nil)),
		event.TransitionsOnly{Next: a.player},
	}

	a.poller = engine.NewPoller(clock, tick)
	for i := 0; i < n; i++ {
		s := sensor.NewSimulated(seed + int64(i))
		c, err := cell.New(i+1, cfg, s, a.panel.Lamp(i), sink)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i+1, err)
		}
		recorder.Seed(c.ID(), c.Status())
		a.sensors = append(a.sensors, s)
		a.poller.Add(c)
	}
	return a, nil
}

// handle applies a decoded key; returns false when the user quits
func (a *app) handle(action render.Action) bool {
	switch action.Kind {
	case render.ActionQuit:
		return false
	case render.ActionSelect:
		a.panel.Select(action.Cell)
	case render.ActionPlace:
		a.sensors[a.panel.Selected()].Place(action.Piece)
	}
	return true
}

// poll runs one sensor tick over every cell
func (a *app) poll() []cell.Transition {
	return a.poller.Tick()
}

// frame moves queued events into the panel log and redraws
func (a *app) frame() {
	for _, e := range a.queue.Consume() {
		a.panel.Log(e.Detail)
	}
	a.panel.Draw(a.captions())
}

func (a *app) captions() []render.Caption {
	cells := a.poller.Cells()
	captions := make([]render.Caption, len(cells))
	for i, c := range cells {
		captions[i] = render.Caption{
			Status: c.Status().String(),
			Piece:  a.sensors[i].Piece().Piece(),
		}
	}
	return captions
}

// elapsedString is shown in the log when the runtime exits
func elapsedString(start time.Time, ticks uint64) string {
	return fmt.Sprintf("ran %s, %d ticks", time.Since(start).Round(time.Second), ticks)
}
