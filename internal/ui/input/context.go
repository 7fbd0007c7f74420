package input

import "searchbar/internal/domain"

// ResultsContext implements the Context interface over the results on screen
type ResultsContext struct {
	Results []domain.ResultRecord
	Cursor  int
}

// ResultCount returns the number of results on screen
func (c ResultsContext) ResultCount() int {
	return len(c.Results)
}

// CurrentIndex returns the highlighted result index
func (c ResultsContext) CurrentIndex() int {
	return c.Cursor
}

// CanCopyCurrent reports whether the highlighted result offers a link
func (c ResultsContext) CanCopyCurrent() bool {
	if c.Cursor < 0 || c.Cursor >= len(c.Results) {
		return false
	}
	return c.Results[c.Cursor].HasLinkActions()
}
