package model

import "time"

// Announcement types
const (
	AnnouncementTypeAnnouncement = "announcement"
	AnnouncementTypeVacancy      = "vacancy"
	AnnouncementTypeMedia        = "media"
	AnnouncementTypeEvent        = "event"
)

// Announcement represents a public announcement, vacancy, event or media post
type Announcement struct {
	ID            int        `json:"id" db:"id"`
	TitleEN       string     `json:"title_en" db:"title_en"`
	TitleAM       string     `json:"title_am" db:"title_am"`
	DescriptionEN string     `json:"description_en" db:"description_en"`
	DescriptionAM string     `json:"description_am" db:"description_am"`
	Type          string     `json:"type" db:"type"`
	TypeEN        string     `json:"type_en" db:"type_en"`
	TypeAM        string     `json:"type_am" db:"type_am"`
	AttachmentURL *string    `json:"attachment_url" db:"attachment_url"`
	Date          *time.Time `json:"date" db:"date"`
	IsPublished   bool       `json:"is_published" db:"is_published"`
	CreatedBy     *string    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// AnnouncementInput is the form payload for creating or updating an announcement
type AnnouncementInput struct {
	TitleEN       string `form:"title_en" binding:"required,max=255"`
	TitleAM       string `form:"title_am" binding:"required,max=255"`
	DescriptionEN string `form:"description_en" binding:"required"`
	DescriptionAM string `form:"description_am" binding:"required"`
	Type          string `form:"type" binding:"omitempty,oneof=announcement vacancy media event"`
	Date          string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	IsPublished   *bool  `form:"is_published"`
}

// AnnouncementTypeLabels returns the English and Amharic display labels
// for an announcement type.
func AnnouncementTypeLabels(t string) (en, am string) {
	switch t {
	case AnnouncementTypeVacancy:
		return "Vacancy", "ባዶ የሥራ መደቦች"
	case AnnouncementTypeMedia:
		return "Media & Gallery", "ሚዲያ"
	case AnnouncementTypeEvent:
		return "Event", "ዝግጅት"
	default:
		return "Announcement", "ማስታወቂያ"
	}
}
