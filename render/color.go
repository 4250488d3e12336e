package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ColorBlack = colorful.Color{R: 0, G: 0, B: 0}
	ColorWhite = colorful.Color{R: 1, G: 1, B: 1}
	ColorFrame = colorful.Color{R: 0.35, G: 0.35, B: 0.4}
)

// ToTcell converts a [0,1] float color to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Contrast picks black or white text for legibility over c
// Rec. 601 luma, same weights as a grayscale conversion
func Contrast(c colorful.Color) colorful.Color {
	c = c.Clamped()
	if c.R*0.299+c.G*0.587+c.B*0.114 > 0.5 {
		return ColorBlack
	}
	return ColorWhite
}

// Blend linearly mixes src over c by alpha, with early outs at the ends
func Blend(c, src colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return c.BlendRgb(src, alpha)
}
