package event

import (
	"log"

	"github.com/lixenwraith/vaxcell/cell"
)

// Log writes events as single lines to a standard logger
type Log struct {
	logger *log.Logger
}

// NewLog writes to logger, or to the standard logger when nil
func NewLog(logger *log.Logger) *Log {
	if logger == nil {
		logger = log.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Emit(e cell.Event) {
	if e.Transition != nil {
		tr := e.Transition
		l.logger.Printf("cell=%d kind=%s from=%s to=%s label=%s reason=%s: %s",
			e.Cell, e.Kind, tr.From, tr.To, tr.Label, tr.Reason, e.Detail)
		return
	}
	l.logger.Printf("cell=%d kind=%s: %s", e.Cell, e.Kind, e.Detail)
}
