package wedding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeWeddingRepo struct {
	weddings map[string]*Wedding
	failWith error
}

func newFakeWeddingRepo() *fakeWeddingRepo {
	return &fakeWeddingRepo{weddings: make(map[string]*Wedding)}
}

func (r *fakeWeddingRepo) Transaction(_ context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeWeddingRepo) Create(_ context.Context, w *Wedding) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.weddings[w.AccountID]; ok {
		return gorm.ErrDuplicatedKey
	}
	copied := *w
	r.weddings[w.AccountID] = &copied
	return nil
}

func (r *fakeWeddingRepo) GetByAccount(_ context.Context, accountID string) (*Wedding, error) {
	w, ok := r.weddings[accountID]
	if !ok {
		return nil, ErrWeddingNotFound
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWeddingRepo) Update(_ context.Context, w *Wedding) error {
	stored, ok := r.weddings[w.AccountID]
	if !ok {
		return ErrWeddingNotFound
	}
	copied := *w
	copied.Gallery = stored.Gallery
	copied.Schedule = stored.Schedule
	r.weddings[w.AccountID] = &copied
	return nil
}

func (r *fakeWeddingRepo) Exists(_ context.Context, accountID string) (bool, error) {
	_, ok := r.weddings[accountID]
	return ok, nil
}

func (r *fakeWeddingRepo) byID(weddingID string) *Wedding {
	for _, w := range r.weddings {
		if w.ID == weddingID {
			return w
		}
	}
	return nil
}

func (r *fakeWeddingRepo) AddImage(_ context.Context, image *GalleryImage) error {
	w := r.byID(image.WeddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	w.Gallery = append(w.Gallery, *image)
	return nil
}

func (r *fakeWeddingRepo) DeleteImage(_ context.Context, weddingID, imageID string) error {
	w := r.byID(weddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	for i, img := range w.Gallery {
		if img.ID == imageID {
			w.Gallery = append(w.Gallery[:i], w.Gallery[i+1:]...)
			return nil
		}
	}
	return ErrImageNotFound
}

func (r *fakeWeddingRepo) ReplaceGallery(_ context.Context, weddingID string, images []GalleryImage) error {
	w := r.byID(weddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	w.Gallery = append([]GalleryImage(nil), images...)
	return nil
}

func (r *fakeWeddingRepo) AddEvent(_ context.Context, event *ScheduleEvent) error {
	w := r.byID(event.WeddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	w.Schedule = append(w.Schedule, *event)
	return nil
}

func (r *fakeWeddingRepo) GetEvent(_ context.Context, weddingID, eventID string) (*ScheduleEvent, error) {
	w := r.byID(weddingID)
	if w == nil {
		return nil, ErrWeddingNotFound
	}
	for i := range w.Schedule {
		if w.Schedule[i].ID == eventID {
			copied := w.Schedule[i]
			return &copied, nil
		}
	}
	return nil, ErrEventNotFound
}

func (r *fakeWeddingRepo) UpdateEvent(_ context.Context, event *ScheduleEvent) error {
	w := r.byID(event.WeddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	for i := range w.Schedule {
		if w.Schedule[i].ID == event.ID {
			w.Schedule[i] = *event
			return nil
		}
	}
	return ErrEventNotFound
}

func (r *fakeWeddingRepo) DeleteEvent(_ context.Context, weddingID, eventID string) error {
	w := r.byID(weddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	for i := range w.Schedule {
		if w.Schedule[i].ID == eventID {
			w.Schedule = append(w.Schedule[:i], w.Schedule[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}

func (r *fakeWeddingRepo) ReplaceSchedule(_ context.Context, weddingID string, events []ScheduleEvent) error {
	w := r.byID(weddingID)
	if w == nil {
		return ErrWeddingNotFound
	}
	w.Schedule = append([]ScheduleEvent(nil), events...)
	return nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		Title: "Anna & Boris",
		Date:  time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC),
		Venue: "Riverside Hall",
	}
}

func TestCreateWedding(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)

	w, err := svc.Create(context.Background(), "acc-1", validCreateInput())
	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "acc-1", w.AccountID)
	assert.Equal(t, DefaultThemeColor, w.ThemeColor)
	assert.Nil(t, w.Description)
}

func TestCreateWeddingValidation(t *testing.T) {
	svc := NewService(newFakeWeddingRepo())

	cases := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr error
	}{
		{"empty title", func(in *CreateInput) { in.Title = "  " }, ErrMissingTitle},
		{"zero date", func(in *CreateInput) { in.Date = time.Time{} }, ErrMissingDate},
		{"empty venue", func(in *CreateInput) { in.Venue = "" }, ErrMissingVenue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), "acc-1", input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateWeddingOnlyOnePerAccount(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "acc-1", validCreateInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "acc-1", validCreateInput())
	assert.ErrorIs(t, err, ErrWeddingExists)
}

func TestCreateWeddingDuplicateKeyMapsToExists(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)

	// Simulates losing the race after the Exists pre-check passed.
	repo.failWith = gorm.ErrDuplicatedKey
	_, err := svc.Create(context.Background(), "acc-1", validCreateInput())
	assert.ErrorIs(t, err, ErrWeddingExists)
}

func TestUpdateWeddingPartial(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "acc-1", validCreateInput())
	require.NoError(t, err)

	venue := "Garden Pavilion"
	dress := "black tie"
	updated, err := svc.Update(context.Background(), "acc-1", Update{
		Venue:     &venue,
		DressCode: &dress,
	})
	require.NoError(t, err)
	assert.Equal(t, "Garden Pavilion", updated.Venue)
	require.NotNil(t, updated.DressCode)
	assert.Equal(t, "black tie", *updated.DressCode)
	assert.Equal(t, "Anna & Boris", updated.Title)
}

func TestUpdateWeddingRejectsEmptyTitle(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "acc-1", validCreateInput())
	require.NoError(t, err)

	empty := "   "
	_, err = svc.Update(context.Background(), "acc-1", Update{Title: &empty})
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestGalleryLifecycle(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acc-1", validCreateInput())
	require.NoError(t, err)

	img, err := svc.AddGalleryImage(ctx, "acc-1", GalleryImage{URL: "https://img.example/1.jpg", Name: "venue"})
	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)

	_, err = svc.AddGalleryImage(ctx, "acc-1", GalleryImage{URL: "  "})
	assert.ErrorIs(t, err, ErrMissingImageURL)

	w, err := svc.ReplaceGallery(ctx, "acc-1", []GalleryImage{
		{URL: "https://img.example/2.jpg", Name: "a"},
		{URL: "https://img.example/3.jpg", Name: "b"},
	})
	require.NoError(t, err)
	assert.Len(t, w.Gallery, 2)

	err = svc.DeleteGalleryImage(ctx, "acc-1", w.Gallery[0].ID)
	require.NoError(t, err)

	err = svc.DeleteGalleryImage(ctx, "acc-1", "missing")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestScheduleLifecycle(t *testing.T) {
	repo := newFakeWeddingRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acc-1", validCreateInput())
	require.NoError(t, err)

	event, err := svc.AddScheduleEvent(ctx, "acc-1", ScheduleEvent{Time: "15:00", Event: "Ceremony"})
	require.NoError(t, err)
	assert.Equal(t, ScheduleStatusPending, event.Status)

	_, err = svc.AddScheduleEvent(ctx, "acc-1", ScheduleEvent{Time: "", Event: "x"})
	assert.ErrorIs(t, err, ErrMissingEventTime)

	_, err = svc.AddScheduleEvent(ctx, "acc-1", ScheduleEvent{Time: "16:00", Event: "x", Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.UpdateScheduleEvent(ctx, "acc-1", event.ID, ScheduleEvent{Status: ScheduleStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, ScheduleStatusConfirmed, updated.Status)
	assert.Equal(t, "Ceremony", updated.Event)

	_, err = svc.UpdateScheduleEvent(ctx, "acc-1", "missing", ScheduleEvent{})
	assert.ErrorIs(t, err, ErrEventNotFound)

	w, err := svc.ReplaceSchedule(ctx, "acc-1", []ScheduleEvent{
		{Time: "14:00", Event: "Guests arrive"},
		{Time: "15:00", Event: "Ceremony"},
	})
	require.NoError(t, err)
	assert.Len(t, w.Schedule, 2)

	err = svc.DeleteScheduleEvent(ctx, "acc-1", w.Schedule[0].ID)
	require.NoError(t, err)
}

func TestWeddingOperationsRequireWedding(t *testing.T) {
	svc := NewService(newFakeWeddingRepo())
	ctx := context.Background()

	_, err := svc.GetByAccount(ctx, "acc-1")
	assert.ErrorIs(t, err, ErrWeddingNotFound)

	_, err = svc.AddGalleryImage(ctx, "acc-1", GalleryImage{URL: "https://img.example/1.jpg"})
	assert.ErrorIs(t, err, ErrWeddingNotFound)

	_, err = svc.AddScheduleEvent(ctx, "acc-1", ScheduleEvent{Time: "15:00"})
	assert.ErrorIs(t, err, ErrWeddingNotFound)
}
