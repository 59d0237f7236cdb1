package guest

import "time"

const (
	MethodTelegram = "telegram"
	MethodEmail    = "email"
	MethodWhatsApp = "whatsapp"
)

const (
	RSVPPending  = "pending"
	RSVPAccepted = "accepted"
	RSVPDeclined = "declined"
	RSVPMaybe    = "maybe"
)

type Guest struct {
	ID                  string     `gorm:"type:uuid;primaryKey"`
	InviterID           string     `gorm:"type:uuid;not null;index"`
	Name                string     `gorm:"not null"`
	Email               *string    ``
	TelegramUsername    string     `gorm:"not null;index"`
	ChatID              *string    ``
	Invited             bool       `gorm:"not null;default:false"`
	InvitationSentAt    *time.Time ``
	InvitationToken     string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	InvitationMethod    string     `gorm:"type:varchar(16);not null;default:telegram"`
	HasRSVPed           bool       `gorm:"column:has_rsvped;not null;default:false"`
	RSVPStatus          string     `gorm:"type:varchar(16);not null;default:pending"`
	RSVPSubmittedAt     *time.Time ``
	PlusOneAllowed      bool       `gorm:"not null;default:false"`
	PlusOneCount        int        `gorm:"not null;default:0"`
	DietaryRestrictions *string    ``
	CreatedAt           time.Time  `gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime"`
}

// Spec describes one guest to create.
type Spec struct {
	Name             string
	Email            string
	TelegramUsername string
	InvitationMethod string
	PlusOneAllowed   bool
}

// CreateResult is one row of a bulk-creation response. Status is "created" or
// "failed"; creation failures never abort the batch.
type CreateResult struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	TelegramUsername string `json:"telegramUsername,omitempty"`
	Error            string `json:"error,omitempty"`
}

// SendResult is one row of a bulk-send response.
type SendResult struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Sent   bool   `json:"sent"`
	Method string `json:"method,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ListFilter struct {
	Page   int
	Limit  int
	Status string
}

type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func ValidMethod(method string) bool {
	switch method {
	case MethodTelegram, MethodEmail, MethodWhatsApp:
		return true
	}
	return false
}

func ValidRSVPStatus(status string) bool {
	switch status {
	case RSVPPending, RSVPAccepted, RSVPDeclined, RSVPMaybe:
		return true
	}
	return false
}
