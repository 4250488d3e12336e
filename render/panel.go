// Package render draws cell lights on a terminal using tcell
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vaxcell/parameter"
	"github.com/lixenwraith/vaxcell/status"
)

const (
	helpLine   = "[1-9] select  [r/g/w] place piece  [space] lift  [q] quit"
	maxLogRows = 6
)

// Caption is the text shown under a lamp
type Caption struct {
	Status string
	Piece  string
}

// Panel lays out one lamp per cell and a status footer
// Drawn from the main loop only; not safe for concurrent use
type Panel struct {
	screen   tcell.Screen
	lamps    []*Lamp
	selected int
	registry *status.Registry
	logLines []string
}

// NewPanel creates n lamps, all off
func NewPanel(screen tcell.Screen, n int) *Panel {
	lamps := make([]*Lamp, n)
	for i := range lamps {
		lamps[i] = &Lamp{}
	}
	return &Panel{
		screen: screen,
		lamps:  lamps,
	}
}

// Lamp returns the light for cell i
func (p *Panel) Lamp(i int) *Lamp {
	return p.lamps[i]
}

// Len is the number of lamps
func (p *Panel) Len() int {
	return len(p.lamps)
}

// Select highlights cell i; out of range selections are ignored
func (p *Panel) Select(i int) {
	if i >= 0 && i < len(p.lamps) {
		p.selected = i
	}
}

// Selected returns the highlighted cell
func (p *Panel) Selected() int {
	return p.selected
}

// SetRegistry enables the metrics footer
func (p *Panel) SetRegistry(reg *status.Registry) {
	p.registry = reg
}

// Log appends lines to the scrolling event area
func (p *Panel) Log(lines ...string) {
	p.logLines = append(p.logLines, lines...)
	if over := len(p.logLines) - maxLogRows; over > 0 {
		p.logLines = append(p.logLines[:0], p.logLines[over:]...)
	}
}

// LogLines returns the visible event lines, oldest first
func (p *Panel) LogLines() []string {
	return p.logLines
}

// LampOrigin returns the top-left screen cell of lamp i for the current width
func (p *Panel) LampOrigin(i int) (x, y int) {
	w, _ := p.screen.Size()
	stride := parameter.LampWidth + parameter.LampGap
	perRow := max(1, (w-parameter.PanelLeft)/stride)
	rowHeight := parameter.LampHeight + 3

	col, row := i%perRow, i/perRow
	return parameter.PanelLeft + col*stride, parameter.PanelTop + 1 + row*rowHeight
}

// Draw renders all lamps with their captions and shows the frame
func (p *Panel) Draw(captions []Caption) {
	p.screen.Clear()

	text := tcell.StyleDefault.Foreground(ToTcell(ColorWhite))
	p.drawText(parameter.PanelLeft, 0, helpLine, text)

	bottom := 0
	for i, lamp := range p.lamps {
		x, y := p.LampOrigin(i)
		p.drawLamp(lamp, x, y, i == p.selected)

		label := fmt.Sprintf("%d", i+1)
		var caption Caption
		if i < len(captions) {
			caption = captions[i]
		}
		if caption.Status != "" {
			label += " " + caption.Status
		}
		style := text
		if i == p.selected {
			style = style.Reverse(true)
		}
		p.drawText(x, y+parameter.LampHeight, fit(label, parameter.LampWidth), style)
		p.drawText(x, y+parameter.LampHeight+1, fit(caption.Piece, parameter.LampWidth), text.Dim(true))

		bottom = max(bottom, y+parameter.LampHeight+3)
	}

	if p.registry != nil {
		var parts []string
		for _, e := range p.registry.Counters() {
			parts = append(parts, fmt.Sprintf("%s=%d", e.Key, e.Value))
		}
		p.drawText(parameter.PanelLeft, bottom, strings.Join(parts, "  "), text.Dim(true))
		bottom++
	}

	for i, line := range p.logLines {
		p.drawText(parameter.PanelLeft, bottom+i, line, text)
	}

	p.screen.Show()
}

// drawLamp fills the lamp rectangle with its visible color
// Selected lamps get a frame tinted by the lamp color
func (p *Panel) drawLamp(lamp *Lamp, x, y int, selected bool) {
	fill := lamp.Visible()
	body := tcell.StyleDefault.Background(ToTcell(fill)).Foreground(ToTcell(Contrast(fill)))

	frame := body
	if selected {
		frame = tcell.StyleDefault.Background(ToTcell(Blend(ColorFrame, fill, 0.3)))
	}

	for dy := 0; dy < parameter.LampHeight; dy++ {
		for dx := 0; dx < parameter.LampWidth; dx++ {
			edge := dy == 0 || dy == parameter.LampHeight-1 || dx == 0 || dx == parameter.LampWidth-1
			style := body
			if edge {
				style = frame
			}
			p.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}

	if !lamp.IsOn() {
		p.drawText(x+1, y+parameter.LampHeight/2, fit("off", parameter.LampWidth-2), body)
	}
}

func (p *Panel) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		p.screen.SetContent(x+i, y, r, nil, style)
	}
}

// fit truncates s to at most n runes
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
