// Package session holds the search session state machine.
//
// State is a plain value. Every transition on Machine takes the current State and
// returns the next one plus the timers it wants scheduled; nothing here sleeps or
// starts goroutines. Timer completions are fed back with the generation they were
// scheduled for, and completions whose generation is no longer current are ignored.
package session

import (
	"time"

	"searchbar/internal/domain"
)

// Phase is the lifecycle position of the session
type Phase int

const (
	// PhaseIdle means the query is empty
	PhaseIdle Phase = iota
	// PhasePending means a lookup is scheduled for the current query
	PhasePending
	// PhaseSettled means the lookup finished and results are visible
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Timing holds the fixed delays of the simulated behavior
type Timing struct {
	LookupDelay    time.Duration
	CopyResetDelay time.Duration
	CountTick      time.Duration
}

// DefaultTiming returns the reference delays
func DefaultTiming() Timing {
	return Timing{
		LookupDelay:    2000 * time.Millisecond,
		CopyResetDelay: 2000 * time.Millisecond,
		CountTick:      100 * time.Millisecond,
	}
}

// Generations identify the most recently scheduled timer of each kind
type Generations struct {
	Lookup uint64
	Copy   uint64
	Count  uint64
}

// State is the complete session view state.
// Maps held by a State are never mutated in place; transitions replace them.
type State struct {
	Query       string
	Phase       Phase
	IsLoading   bool
	ShowResults bool
	ActiveTab   domain.Category
	CopiedID    *int

	EnabledTabs    domain.EnabledTabs
	Records        []domain.ResultRecord
	Counts         domain.CategoryCounts
	AnimatedCounts domain.CategoryCounts

	Gen Generations
}

// NewState returns an idle session with the given tab visibility
func NewState(enabled domain.EnabledTabs) State {
	if enabled == nil {
		enabled = domain.DefaultEnabledTabs()
	}
	return State{
		Phase:          PhaseIdle,
		ActiveTab:      domain.CategoryAll,
		EnabledTabs:    enabled.Clone(),
		Counts:         CalculateCounts(nil),
		AnimatedCounts: domain.CategoryCounts{},
	}
}

// Copied returns the index of the result whose link was copied last, if any
func (s State) Copied() (int, bool) {
	if s.CopiedID == nil {
		return 0, false
	}
	return *s.CopiedID, true
}

// Settled reports whether results are on screen
func (s State) Settled() bool {
	return s.Phase == PhaseSettled
}

// Effect is a timer a transition asks the caller to schedule
type Effect interface {
	isEffect()
}

// ScheduleLookup asks for CompleteLookup(Generation) after the delay
type ScheduleLookup struct {
	Generation uint64
	After      time.Duration
}

// ScheduleCopyReset asks for ResetCopy(Generation) after the delay
type ScheduleCopyReset struct {
	Generation uint64
	After      time.Duration
}

// ScheduleCountTick asks for TickCounts(Generation) after the delay
type ScheduleCountTick struct {
	Generation uint64
	After      time.Duration
}

func (ScheduleLookup) isEffect()    {}
func (ScheduleCopyReset) isEffect() {}
func (ScheduleCountTick) isEffect() {}
