package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	cases := map[RecordType]Category{
		TypeFile:   CategoryFiles,
		TypeImage:  CategoryFiles,
		TypeVideo:  CategoryFiles,
		TypePerson: CategoryPeople,
		TypeChat:   CategoryChat,
		TypeList:   CategoryList,
	}
	for recordType, want := range cases {
		assert.Equal(t, want, CategoryOf(recordType), "type %s", recordType)
	}
	assert.Equal(t, Category(""), CategoryOf("podcast"))
}

func TestCategoryMatches(t *testing.T) {
	video := ResultRecord{Type: TypeVideo, Title: "demo.mp4"}
	assert.True(t, CategoryAll.Matches(video))
	assert.True(t, CategoryFiles.Matches(video))
	assert.False(t, CategoryPeople.Matches(video))
}

func TestCategoryToggleable(t *testing.T) {
	assert.False(t, CategoryAll.Toggleable())
	assert.False(t, Category("music").Toggleable())
	for _, c := range ToggleableCategories {
		assert.True(t, c.Toggleable(), "category %s", c)
	}
}

func TestPresence(t *testing.T) {
	assert.Equal(t, PresenceActive, ResultRecord{Type: TypePerson, Subtitle: "Active now"}.Presence())
	assert.Equal(t, PresenceInactive, ResultRecord{Type: TypePerson, Subtitle: "Unactivated"}.Presence())
	assert.Equal(t, PresenceAway, ResultRecord{Type: TypePerson, Subtitle: "Active 2h ago"}.Presence())
	assert.Equal(t, Presence(""), ResultRecord{Type: TypeFile, Subtitle: "Active now"}.Presence())
}

func TestHasLinkActions(t *testing.T) {
	assert.False(t, ResultRecord{Type: TypePerson}.HasLinkActions())
	assert.True(t, ResultRecord{Type: TypeChat}.HasLinkActions())
}

func TestEnabledTabs(t *testing.T) {
	tabs := DefaultEnabledTabs()
	assert.True(t, tabs.IsVisible(CategoryAll))
	assert.True(t, tabs.IsVisible(CategoryFiles))
	assert.False(t, tabs.IsVisible(CategoryChat))

	clone := tabs.Clone()
	clone[CategoryChat] = true
	assert.False(t, tabs[CategoryChat], "clone must not alias the original")
}

func TestCategoryInfo(t *testing.T) {
	assert.Equal(t, "People", CategoryPeople.Info().Label)
	assert.Equal(t, "person-icon", CategoryPeople.Info().Icon)
	assert.Empty(t, CategoryAll.Info().Icon)
}
