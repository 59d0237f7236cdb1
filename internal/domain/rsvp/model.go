package rsvp

import "time"

const (
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
	ResponseMaybe    = "maybe"
)

type Record struct {
	ID                   string    `gorm:"type:uuid;primaryKey"`
	GuestID              string    `gorm:"type:uuid;not null;uniqueIndex:idx_rsvps_guest_wedding"`
	WeddingID            string    `gorm:"type:uuid;not null;uniqueIndex:idx_rsvps_guest_wedding"`
	Response             string    `gorm:"type:varchar(16);not null"`
	AttendingCount       int       `gorm:"not null;default:1"`
	Message              *string   ``
	DietaryRestrictions  *string   ``
	SongRequests         *string   ``
	AccommodationNeeded  bool      `gorm:"not null;default:false"`
	TransportationNeeded bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (Record) TableName() string { return "rsvps" }

// GuestView is the slice of the guest row the intake flow reads and mirrors.
type GuestView struct {
	ID              string
	InviterID       string
	Name            string
	Invited         bool
	HasRSVPed       bool
	RSVPStatus      string
	RSVPSubmittedAt *time.Time
}

// WeddingView is the event summary shown to a responding guest.
type WeddingView struct {
	ID    string
	Title string
	Date  time.Time
	Venue string
}

type SubmitInput struct {
	Response             string
	AttendingCount       int
	Message              string
	DietaryRestrictions  string
	SongRequests         string
	AccommodationNeeded  bool
	TransportationNeeded bool
}

// SubmitOutput is what the public endpoint returns after a successful submit.
type SubmitOutput struct {
	Record  *Record
	Guest   *GuestView
	Wedding *WeddingView
}

// Status is the read-only view keyed by invitation token.
type Status struct {
	Guest   *GuestView
	Wedding *WeddingView
	Record  *Record
}

func ValidResponse(response string) bool {
	switch response {
	case ResponseAccepted, ResponseDeclined, ResponseMaybe:
		return true
	}
	return false
}
