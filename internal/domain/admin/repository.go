package admin

import "context"

type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountGuests(ctx context.Context) (int64, error)
	CountWeddings(ctx context.Context) (int64, error)
	CountPendingRSVPs(ctx context.Context) (int64, error)
	ListUsers(ctx context.Context, limit, offset int) ([]UserRow, int64, error)
	ListGuests(ctx context.Context, limit, offset int) ([]GuestRow, int64, error)
}
