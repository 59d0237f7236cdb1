package notification

import "context"

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	List(ctx context.Context, accountID string, limit, offset int) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, accountID string) (int64, error)
	MarkRead(ctx context.Context, accountID, id string) error
	MarkAllRead(ctx context.Context, accountID string) error
	Delete(ctx context.Context, accountID, id string) error
}
