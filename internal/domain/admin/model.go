package admin

import "time"

// Stats is the console landing-page summary.
type Stats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalInvites   int64 `json:"totalInvites"`
	ActiveWeddings int64 `json:"activeWeddings"`
	PendingRSVPs   int64 `json:"pendingRSVPs"`
}

// UserRow is an account as listed in the console; credentials never leave the
// repository layer.
type UserRow struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	WeddingDate *time.Time `json:"weddingDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// GuestRow is a guest joined with its inviter's name and email.
type GuestRow struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	InviterName  string     `json:"inviterName"`
	InviterEmail string     `json:"inviterEmail"`
	Invited      bool       `json:"invited"`
	HasRSVPed    bool       `json:"hasRSVPed"`
	RSVPStatus   string     `json:"rsvpStatus"`
	CreatedAt    time.Time  `json:"createdAt"`
	SentAt       *time.Time `json:"invitationSentAt,omitempty"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}
