package cell

import (
	"time"

	"github.com/lixenwraith/vaxcell/config"
)

// Step applies a debounced label to a phase at instant now
// It is pure: identical inputs always yield the same phase and record
// ok is false when the status did not change, in which case tr is zero
func Step(cfg *config.Config, p Phase, label Label, now time.Time) (next Phase, tr Transition, ok bool) {
	next = p

	switch p.Status {
	case StatusHealthy:
		switch {
		case label == LabelRed:
			next = Resting(StatusInfected)
			tr.Reason = ReasonPathogen
		case label.IsTreatment():
			next = Transitioning(StatusInoculating, StatusHealthy, now)
			tr.Reason = ReasonTreatment
		}

	case StatusInfected:
		if label.IsTreatment() {
			next = Transitioning(StatusInoculating, StatusInfected, now)
			tr.Reason = ReasonTreatment
		}

	case StatusImmune:
		if !label.IsTreatment() {
			next = Transitioning(StatusReverting, StatusImmune, now)
			tr.Reason = ReasonTreatmentRemoved
		}

	case StatusInoculating:
		switch {
		case label == LabelRed:
			next = Resting(StatusInfected)
			tr.Reason = ReasonReinfected
		case label.IsTreatment():
			if progress(p.Elapsed(now), cfg.InoculationDuration) >= 1 {
				next = Resting(StatusImmune)
				tr.Reason = ReasonInoculated
			}
		default:
			next = Resting(p.From)
			tr.Reason = ReasonTreatmentRemoved
		}

	case StatusReverting:
		if progress(p.Elapsed(now), cfg.ImmuneFadeDuration) >= 1 {
			next = Resting(StatusHealthy)
			tr.Reason = ReasonFadeComplete
		}
	}

	if next.Status == p.Status {
		return next, Transition{}, false
	}

	tr.From = p.Status
	tr.To = next.Status
	tr.Label = label
	tr.At = now
	return next, tr, true
}

// progress is elapsed as a fraction of total, unclamped
func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return float64(elapsed) / float64(total)
}
