package guest

import (
	"context"
	"errors"
	"time"

	domain "wedgram-api/internal/domain/guest"
	weddingdomain "wedgram-api/internal/domain/wedding"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, g *domain.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, inviterID, id string) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).
		Where("inviter_id = ? AND id = ?", inviterID, id).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).
		Where("invitation_token = ?", token).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) GetByTelegramUsername(ctx context.Context, username string) (*domain.Guest, error) {
	var g domain.Guest
	if err := r.db.WithContext(ctx).
		Where("telegram_username = ? OR telegram_username = ?", username, "@"+username).
		Order("created_at asc").
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) ListByIDs(ctx context.Context, inviterID string, ids []string) ([]domain.Guest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var guests []domain.Guest
	if err := r.db.WithContext(ctx).
		Where("inviter_id = ? AND id IN ?", inviterID, ids).
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *PostgresRepository) List(ctx context.Context, inviterID string, filter domain.ListFilter) ([]domain.Guest, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("inviter_id = ?", inviterID)
	if filter.Status != "" {
		query = query.Where("rsvp_status = ?", filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var guests []domain.Guest
	if err := query.
		Order("created_at desc").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&guests).Error; err != nil {
		return nil, 0, err
	}

	return guests, total, nil
}

func (r *PostgresRepository) MarkInvited(ctx context.Context, g *domain.Guest) error {
	now := time.Now().UTC()
	g.Invited = true
	g.InvitationSentAt = &now
	return r.db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"invited":            true,
			"invitation_sent_at": now,
		}).Error
}

func (r *PostgresRepository) SetChatID(ctx context.Context, guestID, chatID string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Guest{}).
		Where("id = ?", guestID).
		Update("chat_id", chatID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *PostgresRepository) WeddingExists(ctx context.Context, accountID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&weddingdomain.Wedding{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
