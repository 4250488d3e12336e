package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vaxcell/cell"
)

// ActionKind is what a key press asks the runtime to do
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelect
	ActionPlace
	ActionQuit
)

// Action is a decoded key press
// Cell is set for ActionSelect, Piece for ActionPlace (LabelIndeterminate lifts)
type Action struct {
	Kind  ActionKind
	Cell  int
	Piece cell.Label
}

// DecodeKey maps keys to actions:
// 1-9 select a cell, r/g/w place a piece, space/0/x lift it, q/Esc/Ctrl-C quit
func DecodeKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return Action{Kind: ActionSelect, Cell: int(r - '1')}
	}

	switch r {
	case 'q', 'Q':
		return Action{Kind: ActionQuit}
	case 'r', 'R':
		return Action{Kind: ActionPlace, Piece: cell.LabelRed}
	case 'g', 'G':
		return Action{Kind: ActionPlace, Piece: cell.LabelGreen}
	case 'w', 'W':
		return Action{Kind: ActionPlace, Piece: cell.LabelWhite}
	case ' ', '0', 'x', 'X':
		return Action{Kind: ActionPlace, Piece: cell.LabelIndeterminate}
	}
	return Action{}
}
