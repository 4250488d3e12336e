package config

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/vaxcell/parameter"
)

// Band is an inclusive integer range on one sensor channel
type Band struct {
	Lo, Hi int
}

// Contains reports whether v lies in [Lo, Hi]
func (b Band) Contains(v int) bool {
	return v >= b.Lo && v <= b.Hi
}

// Empty reports an unsatisfiable range
func (b Band) Empty() bool {
	return b.Lo > b.Hi
}

// Tolerance is one band per channel, in R,G,B order
type Tolerance [3]Band

// Match reports whether all three channels fall inside their bands
func (t Tolerance) Match(r, g, b int) bool {
	return t[0].Contains(r) && t[1].Contains(g) && t[2].Contains(b)
}

// Bands holds the tolerance of every recognized piece color
type Bands struct {
	Red   Tolerance
	Green Tolerance
	White Tolerance
}

// DefaultBands returns the unwidened calibration bands
func DefaultBands() Bands {
	return Bands{
		Red:   toleranceOf(parameter.RedBand),
		Green: toleranceOf(parameter.GreenBand),
		White: toleranceOf(parameter.WhiteBand),
	}
}

func toleranceOf(raw [3][2]int) Tolerance {
	var t Tolerance
	for i, r := range raw {
		t[i] = Band{Lo: r[0], Hi: r[1]}
	}
	return t
}

// Widen grows every band by s on both sides
func (b Bands) Widen(s int) Bands {
	widen := func(t Tolerance) Tolerance {
		for i := range t {
			t[i].Lo -= s
			t[i].Hi += s
		}
		return t
	}
	return Bands{
		Red:   widen(b.Red),
		Green: widen(b.Green),
		White: widen(b.White),
	}
}

// Validate fails on any empty channel range
func (b Bands) Validate() error {
	named := []struct {
		name string
		t    Tolerance
	}{
		{"red", b.Red},
		{"green", b.Green},
		{"white", b.White},
	}
	channels := [3]string{"r", "g", "b"}
	for _, n := range named {
		for i, band := range n.t {
			if band.Empty() {
				return errors.Errorf("%s band channel %s is empty: [%d,%d]", n.name, channels[i], band.Lo, band.Hi)
			}
		}
	}
	return nil
}
