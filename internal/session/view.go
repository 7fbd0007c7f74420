package session

import "searchbar/internal/domain"

// Tab is one entry of the visible tab bar
type Tab struct {
	domain.CategoryInfo
	Count  int // animated count
	Active bool
}

// CalculateCounts counts records per category. Every category is present in the
// result, and "all" counts every record.
func CalculateCounts(records []domain.ResultRecord) domain.CategoryCounts {
	counts := make(domain.CategoryCounts, len(domain.Categories))
	for _, c := range domain.Categories {
		counts[c] = 0
	}
	for _, r := range records {
		counts[domain.CategoryAll]++
		if c := domain.CategoryOf(r.Type); c != "" {
			counts[c]++
		}
	}
	return counts
}

// FilteredResults returns, in order, the records shown under tab.
// Unknown tabs behave like "all".
func FilteredResults(records []domain.ResultRecord, tab domain.Category) []domain.ResultRecord {
	if tab == domain.CategoryAll || !tab.Valid() {
		out := make([]domain.ResultRecord, len(records))
		copy(out, records)
		return out
	}

	var out []domain.ResultRecord
	for _, r := range records {
		if tab.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Tabs returns the tab bar: "all" first, then each enabled category in order
func Tabs(s State) []Tab {
	tabs := make([]Tab, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		if !s.EnabledTabs.IsVisible(c) {
			continue
		}
		tabs = append(tabs, Tab{
			CategoryInfo: c.Info(),
			Count:        s.AnimatedCounts[c],
			Active:       c == s.ActiveTab,
		})
	}
	return tabs
}

// Visible returns the records on screen: the active tab's records once settled,
// nothing otherwise
func Visible(s State) []domain.ResultRecord {
	if !s.ShowResults {
		return nil
	}
	return FilteredResults(s.Records, s.ActiveTab)
}

// NeighborTab returns the visible tab offset steps away from the active one,
// wrapping around. A hidden active tab counts as sitting before the first tab.
func NeighborTab(s State, offset int) domain.Category {
	tabs := Tabs(s)
	if len(tabs) == 0 {
		return domain.CategoryAll
	}

	current := -1
	for i, t := range tabs {
		if t.Active {
			current = i
			break
		}
	}
	if current < 0 {
		if offset > 0 {
			offset--
		}
		current = 0
	}

	n := len(tabs)
	idx := ((current+offset)%n + n) % n
	return tabs[idx].ID
}
