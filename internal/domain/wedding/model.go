package wedding

import "time"

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCompleted = "completed"
)

const DefaultThemeColor = "#667eea"

type Wedding struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	AccountID    string    `gorm:"type:uuid;not null;uniqueIndex"`
	Title        string    `gorm:"not null"`
	Description  *string   ``
	Date         time.Time `gorm:"not null"`
	Venue        string    `gorm:"not null"`
	VenueAddress *string   ``
	DressCode    *string   ``
	ThemeColor   string    `gorm:"type:varchar(16);not null;default:#667eea"`
	CoverImage   *string   ``
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Gallery  []GalleryImage  `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
	Schedule []ScheduleEvent `gorm:"foreignKey:WeddingID;constraint:OnDelete:CASCADE"`
}

type GalleryImage struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	WeddingID   string    `gorm:"type:uuid;not null;index"`
	URL         string    `gorm:"not null"`
	Name        string    `gorm:"not null"`
	Size        int64     `gorm:"not null;default:0"`
	Description *string   ``
	UploadedAt  time.Time `gorm:"autoCreateTime"`
}

type ScheduleEvent struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	WeddingID   string    `gorm:"type:uuid;not null;index"`
	Time        string    `gorm:"not null"`
	Event       string    `gorm:"not null"`
	Description *string   ``
	Location    *string   ``
	Responsible *string   ``
	Status      string    `gorm:"type:varchar(16);not null;default:pending"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

type CreateInput struct {
	Title        string
	Description  string
	Date         time.Time
	Venue        string
	VenueAddress string
	DressCode    string
	ThemeColor   string
	CoverImage   string
}

// Update carries partial wedding edits; nil means unchanged.
type Update struct {
	Title        *string
	Description  *string
	Date         *time.Time
	Venue        *string
	VenueAddress *string
	DressCode    *string
	ThemeColor   *string
	CoverImage   *string
}

func ValidScheduleStatus(status string) bool {
	switch status {
	case ScheduleStatusPending, ScheduleStatusConfirmed, ScheduleStatusCompleted:
		return true
	}
	return false
}
