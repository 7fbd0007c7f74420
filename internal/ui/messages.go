package ui

import (
	"time"

	"searchbar/internal/store"
)

// resultsLoadedMsg carries the outcome of the initial document load
type resultsLoadedMsg struct {
	source string
	store  store.ResultStore
	err    error
}

// lookupDoneMsg fires when the simulated lookup delay has passed
type lookupDoneMsg struct {
	gen uint64
}

// copyResetMsg fires when the "Link copied!" mark should clear
type copyResetMsg struct {
	gen uint64
}

// countTickMsg advances the animated tab counters
type countTickMsg struct {
	gen uint64
}

// frameMsg is sent on a timer while entrance transitions are running
type frameMsg time.Time

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
