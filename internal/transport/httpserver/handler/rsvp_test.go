package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	rsvpdomain "wedgram-api/internal/domain/rsvp"
	"wedgram-api/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRSVPRepo struct {
	guests   map[string]*rsvpdomain.GuestView
	weddings map[string]*rsvpdomain.WeddingView
	records  map[string]*rsvpdomain.Record
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{
		guests:   make(map[string]*rsvpdomain.GuestView),
		weddings: make(map[string]*rsvpdomain.WeddingView),
		records:  make(map[string]*rsvpdomain.Record),
	}
}

func (r *fakeRSVPRepo) Transaction(_ context.Context, fn func(rsvpdomain.Repository) error) error {
	return fn(r)
}

func (r *fakeRSVPRepo) GetGuestByToken(_ context.Context, token string) (*rsvpdomain.GuestView, error) {
	g, ok := r.guests[token]
	if !ok {
		return nil, rsvpdomain.ErrInvitationNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeRSVPRepo) GetWeddingByAccount(_ context.Context, accountID string) (*rsvpdomain.WeddingView, error) {
	w, ok := r.weddings[accountID]
	if !ok {
		return nil, rsvpdomain.ErrWeddingNotFound
	}
	return w, nil
}

func (r *fakeRSVPRepo) GetRecordByGuest(_ context.Context, guestID string) (*rsvpdomain.Record, error) {
	rec, ok := r.records[guestID]
	if !ok {
		return nil, rsvpdomain.ErrRecordNotFound
	}
	return rec, nil
}

func (r *fakeRSVPRepo) CreateRecord(_ context.Context, record *rsvpdomain.Record) error {
	r.records[record.GuestID] = record
	return nil
}

func (r *fakeRSVPRepo) MarkGuestResponded(_ context.Context, guestID, status string, at time.Time) error {
	for _, g := range r.guests {
		if g.ID == guestID {
			g.HasRSVPed = true
			g.RSVPStatus = status
			g.RSVPSubmittedAt = &at
			return nil
		}
	}
	return rsvpdomain.ErrInvitationNotFound
}

func newRSVPTestServer(repo *fakeRSVPRepo) *httptest.Server {
	log := logger.New(io.Discard, 0, "text")
	h := &Handlers{
		RSVP: rsvpdomain.NewService(repo),
		log:  log,
	}

	r := chi.NewRouter()
	r.Post("/api/rsvp/{token}", h.SubmitRSVP)
	r.Get("/api/rsvp/{token}", h.RSVPStatus)
	return httptest.NewServer(r)
}

func seedInvitedGuest(repo *fakeRSVPRepo, token string) {
	repo.guests[token] = &rsvpdomain.GuestView{
		ID:        "guest-1",
		InviterID: "acc-1",
		Name:      "Dana",
		Invited:   true,
	}
	repo.weddings["acc-1"] = &rsvpdomain.WeddingView{
		ID:    "wed-1",
		Title: "Anna & Boris",
		Date:  time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC),
		Venue: "Riverside Hall",
	}
}

func TestSubmitRSVPEndpoint(t *testing.T) {
	repo := newFakeRSVPRepo()
	seedInvitedGuest(repo, "abc123")
	srv := newRSVPTestServer(repo)
	defer srv.Close()

	body := `{"response":"accepted","attendingCount":2,"message":"see you there"}`
	resp, err := http.Post(srv.URL+"/api/rsvp/abc123", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"rsvp":{`)
	assert.Contains(t, string(payload), `"name":"Dana"`)
	assert.Contains(t, string(payload), `"response":"accepted"`)
	require.Contains(t, repo.records, "guest-1")
	assert.Equal(t, 2, repo.records["guest-1"].AttendingCount)
}

func TestSubmitRSVPEndpointConflictOnSecondSubmit(t *testing.T) {
	repo := newFakeRSVPRepo()
	seedInvitedGuest(repo, "abc123")
	srv := newRSVPTestServer(repo)
	defer srv.Close()

	first := `{"response":"accepted","attendingCount":1}`
	resp, err := http.Post(srv.URL+"/api/rsvp/abc123", "application/json", strings.NewReader(first))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	second := `{"response":"declined","attendingCount":1}`
	resp, err = http.Post(srv.URL+"/api/rsvp/abc123", "application/json", strings.NewReader(second))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"already_submitted"`)
	assert.Equal(t, "accepted", repo.records["guest-1"].Response)
}

func TestSubmitRSVPEndpointUnknownToken(t *testing.T) {
	srv := newRSVPTestServer(newFakeRSVPRepo())
	defer srv.Close()

	body := `{"response":"accepted","attendingCount":1}`
	resp, err := http.Post(srv.URL+"/api/rsvp/nope", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitRSVPEndpointNotInvited(t *testing.T) {
	repo := newFakeRSVPRepo()
	seedInvitedGuest(repo, "abc123")
	repo.guests["abc123"].Invited = false
	srv := newRSVPTestServer(repo)
	defer srv.Close()

	body := `{"response":"accepted","attendingCount":1}`
	resp, err := http.Post(srv.URL+"/api/rsvp/abc123", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitRSVPEndpointRejectsUnknownFields(t *testing.T) {
	repo := newFakeRSVPRepo()
	seedInvitedGuest(repo, "abc123")
	srv := newRSVPTestServer(repo)
	defer srv.Close()

	body := `{"response":"accepted","attendingCount":1,"bogus":true}`
	resp, err := http.Post(srv.URL+"/api/rsvp/abc123", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRSVPStatusEndpoint(t *testing.T) {
	repo := newFakeRSVPRepo()
	seedInvitedGuest(repo, "abc123")
	srv := newRSVPTestServer(repo)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/rsvp/abc123")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"hasRSVPed":false`)
	assert.Contains(t, string(payload), `"rsvp":null`)
	assert.Contains(t, string(payload), `"title":"Anna & Boris"`)
}
