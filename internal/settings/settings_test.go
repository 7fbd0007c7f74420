package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchbar/internal/domain"
)

func TestItemsOrderAndValues(t *testing.T) {
	items := Items(domain.DefaultEnabledTabs())
	require.Len(t, items, 4)

	ids := make([]domain.Category, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []domain.Category{
		domain.CategoryFiles, domain.CategoryPeople, domain.CategoryChat, domain.CategoryList,
	}, ids)

	assert.True(t, items[0].Enabled)
	assert.True(t, items[1].Enabled)
	assert.False(t, items[2].Enabled)
	assert.False(t, items[3].Enabled)
	assert.Equal(t, "Files", items[0].Label)
	assert.Equal(t, "person-icon", items[1].Icon)
}

func TestItemsMissingKeysAreDisabled(t *testing.T) {
	for _, it := range Items(nil) {
		assert.False(t, it.Enabled, it.ID)
	}
}

func TestPanelCursorBounds(t *testing.T) {
	p := NewPanel()
	p.MoveUp()
	assert.Equal(t, 0, p.Cursor())

	for i := 0; i < 10; i++ {
		p.MoveDown()
	}
	assert.Equal(t, 3, p.Cursor())
	assert.Equal(t, domain.CategoryList, p.Current())

	p.Reset()
	assert.Equal(t, domain.CategoryFiles, p.Current())
}

func TestToggleReportsFlippedValue(t *testing.T) {
	enabled := domain.DefaultEnabledTabs()
	p := NewPanel()

	var gotID domain.Category
	var gotValue bool
	calls := 0
	record := func(id domain.Category, v bool) {
		calls++
		gotID, gotValue = id, v
	}

	p.Toggle(enabled, record)
	assert.Equal(t, domain.CategoryFiles, gotID)
	assert.False(t, gotValue)

	p.MoveDown()
	p.MoveDown()
	p.Toggle(enabled, record)
	assert.Equal(t, domain.CategoryChat, gotID)
	assert.True(t, gotValue)

	assert.Equal(t, 2, calls)
	assert.False(t, enabled[domain.CategoryChat], "panel must not write the map")
}

func TestToggleNilCallback(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPanel().Toggle(domain.DefaultEnabledTabs(), nil)
	})
}
