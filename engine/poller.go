package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/vaxcell/cell"
)

// Poller updates every cell once per tick, sequentially, from a single goroutine
// Cells own their sensor and light exclusively, so no locking is involved
type Poller struct {
	clock    Clock
	interval time.Duration
	cells    []*cell.Cell
	ticks    uint64

	// OnTick runs after every tick with the transitions it produced; optional
	OnTick func(now time.Time, changes []cell.Transition)
}

// NewPoller creates a poller over cells; interval is the period for Run and tickers driving Tick
func NewPoller(clock Clock, interval time.Duration, cells ...*cell.Cell) *Poller {
	return &Poller{
		clock:    clock,
		interval: interval,
		cells:    cells,
	}
}

// Add appends a cell to the polling order
func (p *Poller) Add(c *cell.Cell) {
	p.cells = append(p.cells, c)
}

// Cells returns the polled cells in order
func (p *Poller) Cells() []*cell.Cell {
	return p.cells
}

// Ticks returns the number of completed ticks
func (p *Poller) Ticks() uint64 {
	return p.ticks
}

// Tick updates each cell at the clock's current reading and returns the transitions in cell order
func (p *Poller) Tick() []cell.Transition {
	var changes []cell.Transition
	var now time.Time
	for _, c := range p.cells {
		now = p.clock.Now()
		if tr, ok := c.Update(now); ok {
			changes = append(changes, tr)
		}
	}
	p.ticks++

	if p.OnTick != nil {
		if len(p.cells) == 0 {
			now = p.clock.Now()
		}
		p.OnTick(now, changes)
	}
	return changes
}

// Interval is the tick period used by Run
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run ticks at the configured interval until ctx is cancelled
func (p *Poller) Run(ctx context.Context) error {
	if p.interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", p.interval)
	}
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Tick()
		}
	}
}
