package rsvp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRSVPRepo struct {
	guestsByToken map[string]*GuestView
	weddings      map[string]*WeddingView
	records       map[string]*Record
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{
		guestsByToken: make(map[string]*GuestView),
		weddings:      make(map[string]*WeddingView),
		records:       make(map[string]*Record),
	}
}

func (r *fakeRSVPRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeRSVPRepo) GetGuestByToken(ctx context.Context, token string) (*GuestView, error) {
	guest, ok := r.guestsByToken[token]
	if !ok {
		return nil, ErrInvitationNotFound
	}
	copied := *guest
	return &copied, nil
}

func (r *fakeRSVPRepo) GetWeddingByAccount(ctx context.Context, accountID string) (*WeddingView, error) {
	wedding, ok := r.weddings[accountID]
	if !ok {
		return nil, ErrWeddingNotFound
	}
	return wedding, nil
}

func (r *fakeRSVPRepo) GetRecordByGuest(ctx context.Context, guestID string) (*Record, error) {
	record, ok := r.records[guestID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

func (r *fakeRSVPRepo) CreateRecord(ctx context.Context, record *Record) error {
	// mimic the (guest_id, wedding_id) unique index
	if _, ok := r.records[record.GuestID]; ok {
		return gorm.ErrDuplicatedKey
	}
	copied := *record
	r.records[record.GuestID] = &copied
	return nil
}

func (r *fakeRSVPRepo) MarkGuestResponded(ctx context.Context, guestID, status string, at time.Time) error {
	for _, guest := range r.guestsByToken {
		if guest.ID == guestID {
			guest.HasRSVPed = true
			guest.RSVPStatus = status
			guest.RSVPSubmittedAt = &at
			return nil
		}
	}
	return ErrInvitationNotFound
}

func (r *fakeRSVPRepo) addGuest(token string, invited bool) *GuestView {
	guest := &GuestView{
		ID:         "guest-" + token,
		InviterID:  "inviter-1",
		Name:       "Guest " + token,
		Invited:    invited,
		RSVPStatus: "pending",
	}
	r.guestsByToken[token] = guest
	return guest
}

func (r *fakeRSVPRepo) addWedding() {
	r.weddings["inviter-1"] = &WeddingView{
		ID:    "wedding-1",
		Title: "A & B",
		Date:  time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC),
		Venue: "Garden Hall",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", true)
	repo.addWedding()
	svc := NewService(repo)

	out, err := svc.Submit(context.Background(), "tok1", SubmitInput{
		Response:       ResponseAccepted,
		AttendingCount: 2,
		Message:        "See you there!",
	})
	require.NoError(t, err)

	assert.Equal(t, ResponseAccepted, out.Record.Response)
	assert.Equal(t, 2, out.Record.AttendingCount)
	assert.Equal(t, "wedding-1", out.Record.WeddingID)
	assert.True(t, out.Guest.HasRSVPed)
	assert.Equal(t, ResponseAccepted, out.Guest.RSVPStatus)
	assert.NotNil(t, out.Guest.RSVPSubmittedAt)
	assert.Equal(t, "Garden Hall", out.Wedding.Venue)
}

func TestSubmitUnknownToken(t *testing.T) {
	svc := NewService(newFakeRSVPRepo())

	_, err := svc.Submit(context.Background(), "nope", SubmitInput{Response: ResponseAccepted, AttendingCount: 1})
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestSubmitNotInvited(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", false)
	repo.addWedding()
	svc := NewService(repo)

	for _, response := range []string{ResponseAccepted, ResponseDeclined, ResponseMaybe} {
		_, err := svc.Submit(context.Background(), "tok1", SubmitInput{Response: response, AttendingCount: 1})
		assert.ErrorIs(t, err, ErrNotInvited, "response %q", response)
	}
}

func TestSubmitMissingWedding(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", true)
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseDeclined})
	assert.ErrorIs(t, err, ErrWeddingNotFound)
}

func TestSubmitWriteOnce(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", true)
	repo.addWedding()
	svc := NewService(repo)

	first, err := svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseAccepted, AttendingCount: 2})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseDeclined, AttendingCount: 1})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	stored, err := repo.GetRecordByGuest(context.Background(), first.Guest.ID)
	require.NoError(t, err)
	assert.Equal(t, ResponseAccepted, stored.Response, "first response must survive")
	assert.Equal(t, 2, stored.AttendingCount)
}

func TestSubmitDuplicateKeyMapsToConflict(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", true)
	repo.addWedding()

	// A concurrent writer slipped between the pre-check and the insert: reads
	// see no record, the insert hits the unique index.
	svc := NewService(&racingRepo{guests: repo.guestsByToken, weddings: repo.weddings})

	_, err := svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseDeclined, AttendingCount: 1})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

// racingRepo answers reads as if no record exists but rejects the insert with
// a duplicate-key error, modelling the lost race.
type racingRepo struct {
	guests   map[string]*GuestView
	weddings map[string]*WeddingView
}

func (r *racingRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *racingRepo) GetGuestByToken(ctx context.Context, token string) (*GuestView, error) {
	guest, ok := r.guests[token]
	if !ok {
		return nil, ErrInvitationNotFound
	}
	return guest, nil
}

func (r *racingRepo) GetWeddingByAccount(ctx context.Context, accountID string) (*WeddingView, error) {
	wedding, ok := r.weddings[accountID]
	if !ok {
		return nil, ErrWeddingNotFound
	}
	return wedding, nil
}

func (r *racingRepo) GetRecordByGuest(ctx context.Context, guestID string) (*Record, error) {
	return nil, ErrRecordNotFound
}

func (r *racingRepo) CreateRecord(ctx context.Context, record *Record) error {
	return gorm.ErrDuplicatedKey
}

func (r *racingRepo) MarkGuestResponded(ctx context.Context, guestID, status string, at time.Time) error {
	return nil
}

func TestSubmitValidation(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", true)
	repo.addWedding()
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), "tok1", SubmitInput{Response: "perhaps"})
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseAccepted, AttendingCount: 0})
	assert.ErrorIs(t, err, ErrInvalidAttendingSize)

	// declined needs no attending count
	_, err = svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseDeclined})
	assert.NoError(t, err)
}

func TestGetStatusLifecycle(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", true)
	repo.addWedding()
	svc := NewService(repo)

	before, err := svc.GetStatus(context.Background(), "tok1")
	require.NoError(t, err)
	assert.False(t, before.Guest.HasRSVPed)
	assert.Nil(t, before.Record)
	require.NotNil(t, before.Wedding)

	_, err = svc.Submit(context.Background(), "tok1", SubmitInput{Response: ResponseMaybe, AttendingCount: 1, Message: "maybe!"})
	require.NoError(t, err)

	after, err := svc.GetStatus(context.Background(), "tok1")
	require.NoError(t, err)
	assert.True(t, after.Guest.HasRSVPed)
	assert.Equal(t, ResponseMaybe, after.Guest.RSVPStatus)
	require.NotNil(t, after.Record)
	assert.Equal(t, ResponseMaybe, after.Record.Response)
	assert.Equal(t, 1, after.Record.AttendingCount)
	require.NotNil(t, after.Record.Message)
	assert.Equal(t, "maybe!", *after.Record.Message)
}

func TestGetStatusMissingWeddingIsNull(t *testing.T) {
	repo := newFakeRSVPRepo()
	repo.addGuest("tok1", false)
	svc := NewService(repo)

	status, err := svc.GetStatus(context.Background(), "tok1")
	require.NoError(t, err)
	assert.Nil(t, status.Wedding)
	assert.Nil(t, status.Record)
}

func TestGetStatusUnknownToken(t *testing.T) {
	svc := NewService(newFakeRSVPRepo())

	_, err := svc.GetStatus(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}
