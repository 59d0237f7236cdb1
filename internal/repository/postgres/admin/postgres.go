package admin

import (
	"context"

	accountdomain "wedgram-api/internal/domain/account"
	domain "wedgram-api/internal/domain/admin"
	guestdomain "wedgram-api/internal/domain/guest"
	weddingdomain "wedgram-api/internal/domain/wedding"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&accountdomain.Account{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountGuests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&guestdomain.Guest{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountWeddings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&weddingdomain.Wedding{}).Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountPendingRSVPs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&guestdomain.Guest{}).
		Where("invited = TRUE AND has_rsvped = FALSE").
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.UserRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&accountdomain.Account{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []accountdomain.Account
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]domain.UserRow, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, domain.UserRow{
			ID:          acc.ID,
			Name:        acc.Name,
			Email:       acc.Email,
			Role:        acc.Role,
			Active:      acc.Active,
			WeddingDate: acc.WeddingDate,
			CreatedAt:   acc.CreatedAt,
		})
	}
	return rows, total, nil
}

func (r *PostgresRepository) ListGuests(ctx context.Context, limit, offset int) ([]domain.GuestRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&guestdomain.Guest{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		guestdomain.Guest
		InviterName  string `gorm:"column:inviter_name"`
		InviterEmail string `gorm:"column:inviter_email"`
	}
	if err := r.db.WithContext(ctx).
		Model(&guestdomain.Guest{}).
		Select("guests.*, accounts.name AS inviter_name, accounts.email AS inviter_email").
		Joins("JOIN accounts ON accounts.id = guests.inviter_id").
		Order("guests.created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.GuestRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.GuestRow{
			ID:           row.ID,
			Name:         row.Name,
			InviterName:  row.InviterName,
			InviterEmail: row.InviterEmail,
			Invited:      row.Invited,
			HasRSVPed:    row.HasRSVPed,
			RSVPStatus:   row.RSVPStatus,
			CreatedAt:    row.CreatedAt,
			SentAt:       row.InvitationSentAt,
		})
	}
	return out, total, nil
}
