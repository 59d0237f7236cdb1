package rsvp

import (
	"context"
	"errors"
	"time"

	guestdomain "wedgram-api/internal/domain/guest"
	domain "wedgram-api/internal/domain/rsvp"
	weddingdomain "wedgram-api/internal/domain/wedding"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetGuestByToken(ctx context.Context, token string) (*domain.GuestView, error) {
	var g guestdomain.Guest
	if err := r.db.WithContext(ctx).
		Where("invitation_token = ?", token).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return &domain.GuestView{
		ID:              g.ID,
		InviterID:       g.InviterID,
		Name:            g.Name,
		Invited:         g.Invited,
		HasRSVPed:       g.HasRSVPed,
		RSVPStatus:      g.RSVPStatus,
		RSVPSubmittedAt: g.RSVPSubmittedAt,
	}, nil
}

func (r *PostgresRepository) GetWeddingByAccount(ctx context.Context, accountID string) (*domain.WeddingView, error) {
	var w weddingdomain.Wedding
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWeddingNotFound
		}
		return nil, err
	}
	return &domain.WeddingView{
		ID:    w.ID,
		Title: w.Title,
		Date:  w.Date,
		Venue: w.Venue,
	}, nil
}

func (r *PostgresRepository) GetRecordByGuest(ctx context.Context, guestID string) (*domain.Record, error) {
	var record domain.Record
	if err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) CreateRecord(ctx context.Context, record *domain.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) MarkGuestResponded(ctx context.Context, guestID, status string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&guestdomain.Guest{}).
		Where("id = ?", guestID).
		Updates(map[string]interface{}{
			"has_rsvped":        true,
			"rsvp_status":       status,
			"rsvp_submitted_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}
