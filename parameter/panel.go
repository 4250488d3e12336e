package parameter

// Light panel layout in terminal cells
const (
	LampWidth  = 10
	LampHeight = 4
	LampGap    = 2
	PanelTop   = 1
	PanelLeft  = 2
)
