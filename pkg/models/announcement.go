package models

// Announcement category constants.
const (
	AnnouncementCategoryEvent = "Event"
	AnnouncementCategoryNews  = "News"
	AnnouncementCategoryAlert = "Alert"
)

// ValidAnnouncementCategories contains all valid category values.
var ValidAnnouncementCategories = []string{
	AnnouncementCategoryEvent,
	AnnouncementCategoryNews,
	AnnouncementCategoryAlert,
}

// Announcement is a dated notice published to platform members.
type Announcement struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Content  string `json:"content" yaml:"content" validate:"required"`
	Date     string `json:"date" yaml:"date"`
	Category string `json:"category" yaml:"category"`
}

// IsValidAnnouncementCategory checks if the given category is valid.
func IsValidAnnouncementCategory(category string) bool {
	for _, c := range ValidAnnouncementCategories {
		if c == category {
			return true
		}
	}
	return false
}
