package views

import (
	"math"
	"time"
)

// Ease names an easing curve
type Ease string

const (
	EaseLinear Ease = "linear"
	EaseOut    Ease = "easeOut"
	EaseInOut  Ease = "easeInOut"
)

// Transition describes how an element enters the screen. Values are declarative;
// nothing waits on them.
type Transition struct {
	Delay    time.Duration
	Duration time.Duration
	Ease     Ease
}

const (
	staggerStep      = 100 * time.Millisecond
	rowDuration      = 500 * time.Millisecond
	skeletonDuration = 300 * time.Millisecond
	panelDuration    = 200 * time.Millisecond
	panelItemDelay   = 200 * time.Millisecond
	panelItemStep    = 50 * time.Millisecond
)

// SkeletonRows is the number of placeholder rows shown while loading
const SkeletonRows = 8

// TabTransition is the entrance of the i-th tab
func TabTransition(i int) Transition {
	return Transition{Delay: time.Duration(i) * staggerStep, Duration: rowDuration, Ease: EaseOut}
}

// RowTransition is the entrance of the i-th result row
func RowTransition(i int) Transition {
	return Transition{Delay: time.Duration(i) * staggerStep, Duration: rowDuration, Ease: EaseOut}
}

// SkeletonTransition is the entrance of the i-th placeholder row
func SkeletonTransition(i int) Transition {
	return Transition{Delay: time.Duration(i) * staggerStep, Duration: skeletonDuration, Ease: EaseInOut}
}

// PanelTransition is the entrance of the settings panel
func PanelTransition() Transition {
	return Transition{Duration: panelDuration, Ease: EaseInOut}
}

// PanelItemTransition is the entrance of the i-th settings row
func PanelItemTransition(i int) Transition {
	return Transition{
		Delay:    panelItemDelay + time.Duration(i)*panelItemStep,
		Duration: panelDuration,
		Ease:     EaseOut,
	}
}

// End is the time at which the transition is complete
func (t Transition) End() time.Duration {
	return t.Delay + t.Duration
}

// Progress returns the eased completion in [0, 1] at the given elapsed time
func (t Transition) Progress(elapsed time.Duration) float64 {
	if elapsed <= t.Delay {
		return 0
	}
	if t.Duration <= 0 || elapsed >= t.End() {
		return 1
	}
	x := float64(elapsed-t.Delay) / float64(t.Duration)
	switch t.Ease {
	case EaseOut:
		return 1 - (1-x)*(1-x)
	case EaseInOut:
		return (1 - math.Cos(math.Pi*x)) / 2
	default:
		return x
	}
}

// Stage buckets progress into what a terminal can show
type Stage int

const (
	StageHidden Stage = iota
	StageEntering
	StageShown
)

// StageAt returns the rendering stage at the given elapsed time
func (t Transition) StageAt(elapsed time.Duration) Stage {
	switch p := t.Progress(elapsed); {
	case p <= 0:
		return StageHidden
	case p < 1:
		return StageEntering
	default:
		return StageShown
	}
}
