package session

import (
	"strings"

	"searchbar/internal/domain"
)

// Machine applies session transitions using a fixed Timing
type Machine struct {
	timing Timing
}

// NewMachine creates a machine. Zero durations fall back to the defaults.
func NewMachine(t Timing) Machine {
	def := DefaultTiming()
	if t.LookupDelay <= 0 {
		t.LookupDelay = def.LookupDelay
	}
	if t.CopyResetDelay <= 0 {
		t.CopyResetDelay = def.CopyResetDelay
	}
	if t.CountTick <= 0 {
		t.CountTick = def.CountTick
	}
	return Machine{timing: t}
}

// Timing returns the delays the machine schedules with
func (m Machine) Timing() Timing {
	return m.timing
}

// SetQuery stores the query text. A blank query returns the session to idle;
// anything else starts a new lookup and invalidates the previous one.
func (m Machine) SetQuery(s State, text string) (State, []Effect) {
	next := s
	next.Query = text
	next.AnimatedCounts = domain.CategoryCounts{}
	next.Gen.Lookup++
	next.Gen.Count++

	if strings.TrimSpace(text) == "" {
		next.Phase = PhaseIdle
		next.IsLoading = false
		next.ShowResults = false
		next.CopiedID = nil
		next.Gen.Copy++
		return next, nil
	}

	next.Phase = PhasePending
	next.IsLoading = true
	next.ShowResults = false
	return next, []Effect{ScheduleLookup{Generation: next.Gen.Lookup, After: m.timing.LookupDelay}}
}

// Clear empties the query
func (m Machine) Clear(s State) (State, []Effect) {
	return m.SetQuery(s, "")
}

// CompleteLookup settles the pending lookup of the given generation.
// Completions for a superseded or cleared query do nothing.
func (m Machine) CompleteLookup(s State, generation uint64) (State, []Effect) {
	if s.Phase != PhasePending || generation != s.Gen.Lookup {
		return s, nil
	}

	next := s
	next.Phase = PhaseSettled
	next.IsLoading = false
	next.ShowResults = true
	return m.startCounting(next)
}

// LoadResults installs the loaded result set and recomputes the counts
func (m Machine) LoadResults(s State, records []domain.ResultRecord) (State, []Effect) {
	next := s
	next.Records = records
	next.Counts = CalculateCounts(records)
	if next.Phase != PhaseSettled {
		return next, nil
	}
	return m.startCounting(next)
}

// SetActiveTab selects the tab whose records are shown.
// Only "all" and currently enabled tabs are accepted.
func (m Machine) SetActiveTab(s State, tab domain.Category) State {
	if tab != domain.CategoryAll && !(tab.Toggleable() && s.EnabledTabs[tab]) {
		return s
	}
	next := s
	next.ActiveTab = tab
	return next
}

// ToggleTab shows or hides a category tab. The active tab is left alone even
// when it is the one being hidden.
func (m Machine) ToggleTab(s State, tab domain.Category, enabled bool) State {
	if !tab.Toggleable() {
		return s
	}
	next := s
	next.EnabledTabs = s.EnabledTabs.Clone()
	next.EnabledTabs[tab] = enabled
	return next
}

// CopyLink marks a result as copied. The mark clears after the copy delay
// unless another copy happens first.
func (m Machine) CopyLink(s State, index int) (State, []Effect) {
	if index < 0 {
		return s, nil
	}
	next := s
	next.CopiedID = &index
	next.Gen.Copy++
	return next, []Effect{ScheduleCopyReset{Generation: next.Gen.Copy, After: m.timing.CopyResetDelay}}
}

// ResetCopy clears the copied mark if no newer copy superseded it
func (m Machine) ResetCopy(s State, generation uint64) State {
	if generation != s.Gen.Copy {
		return s
	}
	next := s
	next.CopiedID = nil
	return next
}

// TickCounts advances every animated counter one step toward its true count
func (m Machine) TickCounts(s State, generation uint64) (State, []Effect) {
	if generation != s.Gen.Count || s.Phase != PhaseSettled {
		return s, nil
	}

	next := s
	next.AnimatedCounts = make(domain.CategoryCounts, len(s.Counts))
	for c, v := range s.AnimatedCounts {
		next.AnimatedCounts[c] = v
	}

	pending := false
	for c, total := range s.Counts {
		v := next.AnimatedCounts[c]
		if v < total {
			v++
		}
		next.AnimatedCounts[c] = v
		if v < total {
			pending = true
		}
	}

	if !pending {
		return next, nil
	}
	return next, []Effect{ScheduleCountTick{Generation: next.Gen.Count, After: m.timing.CountTick}}
}

// startCounting restarts the counter animation from zero
func (m Machine) startCounting(s State) (State, []Effect) {
	s.Gen.Count++
	s.AnimatedCounts = domain.CategoryCounts{}

	for _, total := range s.Counts {
		if total > 0 {
			return s, []Effect{ScheduleCountTick{Generation: s.Gen.Count, After: m.timing.CountTick}}
		}
	}
	return s, nil
}
