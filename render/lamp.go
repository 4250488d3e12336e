package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Lamp is an on-screen RGB light; it satisfies cell.Light
type Lamp struct {
	color colorful.Color
	on    bool
}

func (l *Lamp) SetColor(c colorful.Color) { l.color = c }
func (l *Lamp) TurnOn()                   { l.on = true }
func (l *Lamp) IsOn() bool                { return l.on }

// Color is the last color set, regardless of power
func (l *Lamp) Color() colorful.Color { return l.color }

// Visible is what the lamp actually shows: black while off
func (l *Lamp) Visible() colorful.Color {
	if !l.on {
		return ColorBlack
	}
	return l.color
}
