package domain

// RecordType is the kind of a search result
type RecordType string

const (
	TypeFile   RecordType = "file"
	TypeImage  RecordType = "image"
	TypeVideo  RecordType = "video"
	TypePerson RecordType = "person"
	TypeChat   RecordType = "chat"
	TypeList   RecordType = "list"
)

// Valid reports whether t is one of the known record types
func (t RecordType) Valid() bool {
	switch t {
	case TypeFile, TypeImage, TypeVideo, TypePerson, TypeChat, TypeList:
		return true
	default:
		return false
	}
}

// ResultRecord is a single mocked search result. Records are never mutated after load.
type ResultRecord struct {
	Type     RecordType `json:"type" yaml:"type"`
	Title    string     `json:"title" yaml:"title"`
	Subtitle string     `json:"subtitle" yaml:"subtitle"`
}

// HasLinkActions reports whether the copy-link/open actions apply to the record
func (r ResultRecord) HasLinkActions() bool {
	return r.Type != TypePerson
}

// Presence is the status dot shown next to a person result
type Presence string

const (
	PresenceActive   Presence = "active"
	PresenceInactive Presence = "inactive"
	PresenceAway     Presence = "away"
)

// Presence derives a person's presence from the subtitle text.
// Non-person records report an empty presence.
func (r ResultRecord) Presence() Presence {
	if r.Type != TypePerson {
		return ""
	}
	switch r.Subtitle {
	case "Active now":
		return PresenceActive
	case "Unactivated":
		return PresenceInactive
	default:
		return PresenceAway
	}
}

// Category is a tab grouping of record types
type Category string

const (
	CategoryAll    Category = "all"
	CategoryFiles  Category = "files"
	CategoryPeople Category = "people"
	CategoryChat   Category = "chat"
	CategoryList   Category = "list"
)

// Categories lists every category in display order, "all" first
var Categories = []Category{CategoryAll, CategoryFiles, CategoryPeople, CategoryChat, CategoryList}

// ToggleableCategories lists the categories that can be hidden from the tab bar
var ToggleableCategories = []Category{CategoryFiles, CategoryPeople, CategoryChat, CategoryList}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Toggleable reports whether c can be enabled or disabled
func (c Category) Toggleable() bool {
	return c != CategoryAll && c.Valid()
}

// CategoryOf returns the non-"all" category that owns a record type
func CategoryOf(t RecordType) Category {
	switch t {
	case TypeFile, TypeImage, TypeVideo:
		return CategoryFiles
	case TypePerson:
		return CategoryPeople
	case TypeChat:
		return CategoryChat
	case TypeList:
		return CategoryList
	default:
		return ""
	}
}

// Matches reports whether a record belongs under the category's tab
func (c Category) Matches(r ResultRecord) bool {
	if c == CategoryAll {
		return true
	}
	return CategoryOf(r.Type) == c
}

// CategoryInfo is the static presentation data of a category
type CategoryInfo struct {
	ID    Category
	Label string
	Icon  string // opaque icon reference for the presentation layer
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryAll:    {ID: CategoryAll, Label: "All"},
	CategoryFiles:  {ID: CategoryFiles, Label: "Files", Icon: "file-icon"},
	CategoryPeople: {ID: CategoryPeople, Label: "People", Icon: "person-icon"},
	CategoryChat:   {ID: CategoryChat, Label: "Chat", Icon: "chat"},
	CategoryList:   {ID: CategoryList, Label: "List", Icon: "list"},
}

// Info returns the presentation data of the category
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{ID: c, Label: string(c)}
}

// CategoryCounts maps each category to the number of records under it
type CategoryCounts map[Category]int

// EnabledTabs maps toggleable categories to their tab bar visibility.
// "all" is always visible and is never stored here.
type EnabledTabs map[Category]bool

// DefaultEnabledTabs returns the initial tab visibility
func DefaultEnabledTabs() EnabledTabs {
	return EnabledTabs{
		CategoryFiles:  true,
		CategoryPeople: true,
		CategoryChat:   false,
		CategoryList:   false,
	}
}

// IsVisible reports whether the tab for c is shown
func (e EnabledTabs) IsVisible(c Category) bool {
	if c == CategoryAll {
		return true
	}
	return e[c]
}

// Clone returns an independent copy
func (e EnabledTabs) Clone() EnabledTabs {
	out := make(EnabledTabs, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
