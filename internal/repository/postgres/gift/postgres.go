package gift

import (
	"context"
	"errors"

	domain "wedgram-api/internal/domain/gift"
	weddingdomain "wedgram-api/internal/domain/wedding"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetWeddingID(ctx context.Context, accountID string) (string, error) {
	var w weddingdomain.Wedding
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("account_id = ?", accountID).
		First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrWeddingNotFound
		}
		return "", err
	}
	return w.ID, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g *domain.Gift) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, weddingID, id string) (*domain.Gift, error) {
	var g domain.Gift
	if err := r.db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, id).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGiftNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) List(ctx context.Context, weddingID string) ([]domain.Gift, error) {
	var gifts []domain.Gift
	if err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at desc").
		Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

func (r *PostgresRepository) Update(ctx context.Context, g *domain.Gift) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, weddingID, id string) error {
	result := r.db.WithContext(ctx).
		Delete(&domain.Gift{}, "wedding_id = ? AND id = ?", weddingID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrGiftNotFound
	}
	return nil
}
