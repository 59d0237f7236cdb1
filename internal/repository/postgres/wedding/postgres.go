package wedding

import (
	"context"
	"errors"

	domain "wedgram-api/internal/domain/wedding"

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

func (r *PostgresRepository) Create(ctx context.Context, w *domain.Wedding) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *PostgresRepository) GetByAccount(ctx context.Context, accountID string) (*domain.Wedding, error) {
	var w domain.Wedding
	if err := r.db.WithContext(ctx).
		Preload("Gallery", func(db *gorm.DB) *gorm.DB { return db.Order("uploaded_at asc") }).
		Preload("Schedule", func(db *gorm.DB) *gorm.DB { return db.Order("time asc") }).
		Where("account_id = ?", accountID).
		First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWeddingNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *PostgresRepository) Update(ctx context.Context, w *domain.Wedding) error {
	return r.db.WithContext(ctx).
		Omit("Gallery", "Schedule").
		Save(w).Error
}

func (r *PostgresRepository) Exists(ctx context.Context, accountID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Wedding{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) AddImage(ctx context.Context, image *domain.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *PostgresRepository) DeleteImage(ctx context.Context, weddingID, imageID string) error {
	result := r.db.WithContext(ctx).
		Delete(&domain.GalleryImage{}, "wedding_id = ? AND id = ?", weddingID, imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func (r *PostgresRepository) ReplaceGallery(ctx context.Context, weddingID string, images []domain.GalleryImage) error {
	if err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Delete(&domain.GalleryImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *PostgresRepository) AddEvent(ctx context.Context, event *domain.ScheduleEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *PostgresRepository) GetEvent(ctx context.Context, weddingID, eventID string) (*domain.ScheduleEvent, error) {
	var event domain.ScheduleEvent
	if err := r.db.WithContext(ctx).
		Where("wedding_id = ? AND id = ?", weddingID, eventID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *PostgresRepository) UpdateEvent(ctx context.Context, event *domain.ScheduleEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *PostgresRepository) DeleteEvent(ctx context.Context, weddingID, eventID string) error {
	result := r.db.WithContext(ctx).
		Delete(&domain.ScheduleEvent{}, "wedding_id = ? AND id = ?", weddingID, eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *PostgresRepository) ReplaceSchedule(ctx context.Context, weddingID string, events []domain.ScheduleEvent) error {
	if err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Delete(&domain.ScheduleEvent{}).Error; err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}
