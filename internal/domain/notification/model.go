package notification

import "time"

const (
	TypeRSVPReceived  = "rsvp_received"
	TypeGuestJoined   = "guest_joined_bot"
	TypeInvitesSent   = "invites_sent"
	TypeSystemMessage = "system"
)

type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	AccountID string    `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Title     string    `gorm:"not null"`
	Body      string    `gorm:"not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
