package notification

import (
	"context"

	domain "wedgram-api/internal/domain/notification"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *PostgresRepository) List(ctx context.Context, accountID string, limit, offset int) ([]domain.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("account_id = ?", accountID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Notification
	if err := query.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) UnreadCount(ctx context.Context, accountID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("account_id = ? AND read = FALSE", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, accountID, id string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("account_id = ? AND id = ?", accountID, id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, accountID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("account_id = ? AND read = FALSE", accountID).
		Update("read", true).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, accountID, id string) error {
	result := r.db.WithContext(ctx).
		Delete(&domain.Notification{}, "account_id = ? AND id = ?", accountID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
