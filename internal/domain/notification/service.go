package notification

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Notify records an in-app notification for the account. Callers treat
// notification failures as non-fatal.
func (s *Service) Notify(ctx context.Context, accountID, notifType, title, body string) (*Notification, error) {
	n := &Notification{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Type:      notifType,
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, accountID string, page, limit int) ([]Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, accountID, limit, (page-1)*limit)
}

func (s *Service) UnreadCount(ctx context.Context, accountID string) (int64, error) {
	return s.repo.UnreadCount(ctx, accountID)
}

func (s *Service) MarkRead(ctx context.Context, accountID, id string) error {
	return s.repo.MarkRead(ctx, accountID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, accountID string) error {
	return s.repo.MarkAllRead(ctx, accountID)
}

func (s *Service) Delete(ctx context.Context, accountID, id string) error {
	return s.repo.Delete(ctx, accountID, id)
}
