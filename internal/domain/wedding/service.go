package wedding

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, accountID string, input CreateInput) (*Wedding, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Venue = strings.TrimSpace(input.Venue)
	if input.Title == "" {
		return nil, ErrMissingTitle
	}
	if input.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if input.Venue == "" {
		return nil, ErrMissingVenue
	}

	exists, err := s.repo.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrWeddingExists
	}

	w := &Wedding{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		Title:      input.Title,
		Date:       input.Date,
		Venue:      input.Venue,
		ThemeColor: DefaultThemeColor,
	}
	if input.Description != "" {
		w.Description = &input.Description
	}
	if input.VenueAddress != "" {
		w.VenueAddress = &input.VenueAddress
	}
	if input.DressCode != "" {
		w.DressCode = &input.DressCode
	}
	if input.ThemeColor != "" {
		w.ThemeColor = input.ThemeColor
	}
	if input.CoverImage != "" {
		w.CoverImage = &input.CoverImage
	}

	if err := s.repo.Create(ctx, w); err != nil {
		// The unique index on account_id is the real one-wedding-per-account
		// guarantee; the Exists pre-check only races nicer error messages.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWeddingExists
		}
		return nil, err
	}

	return w, nil
}

func (s *Service) GetByAccount(ctx context.Context, accountID string) (*Wedding, error) {
	return s.repo.GetByAccount(ctx, accountID)
}

func (s *Service) Exists(ctx context.Context, accountID string) (bool, error) {
	return s.repo.Exists(ctx, accountID)
}

func (s *Service) Update(ctx context.Context, accountID string, update Update) (*Wedding, error) {
	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, ErrMissingTitle
		}
		w.Title = title
	}
	if update.Description != nil {
		w.Description = update.Description
	}
	if update.Date != nil {
		w.Date = *update.Date
	}
	if update.Venue != nil {
		venue := strings.TrimSpace(*update.Venue)
		if venue == "" {
			return nil, ErrMissingVenue
		}
		w.Venue = venue
	}
	if update.VenueAddress != nil {
		w.VenueAddress = update.VenueAddress
	}
	if update.DressCode != nil {
		w.DressCode = update.DressCode
	}
	if update.ThemeColor != nil && *update.ThemeColor != "" {
		w.ThemeColor = *update.ThemeColor
	}
	if update.CoverImage != nil {
		w.CoverImage = update.CoverImage
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

func (s *Service) AddGalleryImage(ctx context.Context, accountID string, image GalleryImage) (*GalleryImage, error) {
	if strings.TrimSpace(image.URL) == "" {
		return nil, ErrMissingImageURL
	}

	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	image.ID = uuid.NewString()
	image.WeddingID = w.ID
	if err := s.repo.AddImage(ctx, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *Service) DeleteGalleryImage(ctx context.Context, accountID, imageID string) error {
	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	return s.repo.DeleteImage(ctx, w.ID, imageID)
}

func (s *Service) ReplaceGallery(ctx context.Context, accountID string, images []GalleryImage) (*Wedding, error) {
	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	for i := range images {
		if strings.TrimSpace(images[i].URL) == "" {
			return nil, ErrMissingImageURL
		}
		images[i].ID = uuid.NewString()
		images[i].WeddingID = w.ID
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.ReplaceGallery(ctx, w.ID, images)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByAccount(ctx, accountID)
}

func (s *Service) AddScheduleEvent(ctx context.Context, accountID string, event ScheduleEvent) (*ScheduleEvent, error) {
	if strings.TrimSpace(event.Time) == "" {
		return nil, ErrMissingEventTime
	}
	if event.Status == "" {
		event.Status = ScheduleStatusPending
	}
	if !ValidScheduleStatus(event.Status) {
		return nil, ErrInvalidStatus
	}

	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	event.ID = uuid.NewString()
	event.WeddingID = w.ID
	if err := s.repo.AddEvent(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) UpdateScheduleEvent(ctx context.Context, accountID, eventID string, update ScheduleEvent) (*ScheduleEvent, error) {
	if update.Status != "" && !ValidScheduleStatus(update.Status) {
		return nil, ErrInvalidStatus
	}

	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.GetEvent(ctx, w.ID, eventID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(update.Time) != "" {
		event.Time = update.Time
	}
	if strings.TrimSpace(update.Event) != "" {
		event.Event = update.Event
	}
	if update.Description != nil {
		event.Description = update.Description
	}
	if update.Location != nil {
		event.Location = update.Location
	}
	if update.Responsible != nil {
		event.Responsible = update.Responsible
	}
	if update.Status != "" {
		event.Status = update.Status
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) DeleteScheduleEvent(ctx context.Context, accountID, eventID string) error {
	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	return s.repo.DeleteEvent(ctx, w.ID, eventID)
}

func (s *Service) ReplaceSchedule(ctx context.Context, accountID string, events []ScheduleEvent) (*Wedding, error) {
	w, err := s.repo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	for i := range events {
		if strings.TrimSpace(events[i].Time) == "" {
			return nil, ErrMissingEventTime
		}
		if events[i].Status == "" {
			events[i].Status = ScheduleStatusPending
		}
		if !ValidScheduleStatus(events[i].Status) {
			return nil, ErrInvalidStatus
		}
		events[i].ID = uuid.NewString()
		events[i].WeddingID = w.ID
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		return tx.ReplaceSchedule(ctx, w.ID, events)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByAccount(ctx, accountID)
}
