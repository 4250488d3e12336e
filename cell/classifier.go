package cell

import (
	"github.com/lixenwraith/vaxcell/config"
)

// Classifier maps samples to labels against the configured bands
type Classifier struct {
	bands config.Bands
}

// NewClassifier uses already widened bands
func NewClassifier(bands config.Bands) Classifier {
	return Classifier{bands: bands}
}

// Classify checks red, then green, then white, so a pathogen wins any overlap
func (c Classifier) Classify(s Sample) Label {
	switch {
	case c.bands.Red.Match(s.R, s.G, s.B):
		return LabelRed
	case c.bands.Green.Match(s.R, s.G, s.B):
		return LabelGreen
	case c.bands.White.Match(s.R, s.G, s.B):
		return LabelWhite
	default:
		return LabelIndeterminate
	}
}
