package rsvp

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetGuestByToken(ctx context.Context, token string) (*GuestView, error)
	GetWeddingByAccount(ctx context.Context, accountID string) (*WeddingView, error)
	GetRecordByGuest(ctx context.Context, guestID string) (*Record, error)
	CreateRecord(ctx context.Context, record *Record) error
	MarkGuestResponded(ctx context.Context, guestID, status string, at time.Time) error
}
