package account

import "time"

const (
	RoleAdmin   = "admin"
	RoleInviter = "inviter"
)

type Account struct {
	ID              string     `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"not null"`
	Email           string     `gorm:"not null"`
	PasswordHash    string     `gorm:"not null"`
	Phone           *string    ``
	Role            string     `gorm:"type:varchar(16);not null;default:inviter"`
	Active          bool       `gorm:"not null;default:true"`
	WeddingDate     *time.Time ``
	PartnerName     *string    ``
	WeddingLocation *string    ``
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

// ProfileUpdate carries the fields an inviter may change; nil means unchanged.
type ProfileUpdate struct {
	Name            *string
	Email           *string
	Phone           *string
	WeddingDate     *time.Time
	PartnerName     *string
	WeddingLocation *string
}
