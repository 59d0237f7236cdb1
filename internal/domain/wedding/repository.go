package wedding

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, wedding *Wedding) error
	GetByAccount(ctx context.Context, accountID string) (*Wedding, error)
	Update(ctx context.Context, wedding *Wedding) error
	Exists(ctx context.Context, accountID string) (bool, error)

	AddImage(ctx context.Context, image *GalleryImage) error
	DeleteImage(ctx context.Context, weddingID, imageID string) error
	ReplaceGallery(ctx context.Context, weddingID string, images []GalleryImage) error

	AddEvent(ctx context.Context, event *ScheduleEvent) error
	GetEvent(ctx context.Context, weddingID, eventID string) (*ScheduleEvent, error)
	UpdateEvent(ctx context.Context, event *ScheduleEvent) error
	DeleteEvent(ctx context.Context, weddingID, eventID string) error
	ReplaceSchedule(ctx context.Context, weddingID string, events []ScheduleEvent) error
}
