package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedgram-api/internal/auth"
	guestdomain "wedgram-api/internal/domain/guest"
	"wedgram-api/internal/transport/httpserver/middleware"
	"wedgram-api/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuestRepo struct {
	hasWedding bool
	guests     map[string]*guestdomain.Guest
}

func newFakeGuestRepo(hasWedding bool) *fakeGuestRepo {
	return &fakeGuestRepo{
		hasWedding: hasWedding,
		guests:     make(map[string]*guestdomain.Guest),
	}
}

func (r *fakeGuestRepo) Create(_ context.Context, g *guestdomain.Guest) error {
	copied := *g
	r.guests[g.ID] = &copied
	return nil
}

func (r *fakeGuestRepo) GetByID(_ context.Context, inviterID, id string) (*guestdomain.Guest, error) {
	g, ok := r.guests[id]
	if !ok || g.InviterID != inviterID {
		return nil, guestdomain.ErrGuestNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGuestRepo) GetByToken(_ context.Context, token string) (*guestdomain.Guest, error) {
	for _, g := range r.guests {
		if g.InvitationToken == token {
			copied := *g
			return &copied, nil
		}
	}
	return nil, guestdomain.ErrGuestNotFound
}

func (r *fakeGuestRepo) GetByTelegramUsername(_ context.Context, username string) (*guestdomain.Guest, error) {
	for _, g := range r.guests {
		if g.TelegramUsername == guestdomain.NormalizeHandle(username) {
			copied := *g
			return &copied, nil
		}
	}
	return nil, guestdomain.ErrGuestNotFound
}

func (r *fakeGuestRepo) ListByIDs(_ context.Context, inviterID string, ids []string) ([]guestdomain.Guest, error) {
	var out []guestdomain.Guest
	for _, id := range ids {
		if g, ok := r.guests[id]; ok && g.InviterID == inviterID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *fakeGuestRepo) List(_ context.Context, inviterID string, _ guestdomain.ListFilter) ([]guestdomain.Guest, int64, error) {
	var out []guestdomain.Guest
	for _, g := range r.guests {
		if g.InviterID == inviterID {
			out = append(out, *g)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeGuestRepo) MarkInvited(_ context.Context, g *guestdomain.Guest) error {
	stored, ok := r.guests[g.ID]
	if !ok {
		return guestdomain.ErrGuestNotFound
	}
	stored.Invited = g.Invited
	stored.InvitationSentAt = g.InvitationSentAt
	return nil
}

func (r *fakeGuestRepo) SetChatID(_ context.Context, guestID, chatID string) error {
	stored, ok := r.guests[guestID]
	if !ok {
		return guestdomain.ErrGuestNotFound
	}
	stored.ChatID = &chatID
	return nil
}

func (r *fakeGuestRepo) WeddingExists(_ context.Context, _ string) (bool, error) {
	return r.hasWedding, nil
}

func newInvitesTestServer(repo *fakeGuestRepo) *httptest.Server {
	log := logger.New(io.Discard, 0, "text")
	h := &Handlers{
		Guests: guestdomain.NewService(repo, nil, nil, "http://localhost:3000", log),
		log:    log,
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithClaims(req.Context(), &auth.Claims{UserID: "acc-1", Role: "user"})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/invites", h.CreateGuests)
	r.Post("/api/invites/send", h.SendInvitations)
	return httptest.NewServer(r)
}

func TestCreateGuestsEndpoint(t *testing.T) {
	repo := newFakeGuestRepo(true)
	srv := newInvitesTestServer(repo)
	defer srv.Close()

	body := `{"guests":[{"name":"Dana","telegramUsername":"@dana"},{"name":"","telegramUsername":"@nobody"}]}`
	resp, err := http.Post(srv.URL+"/api/invites", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"results":[`)
	assert.Contains(t, string(payload), `"total":1`)
	assert.Contains(t, string(payload), `"status":"created"`)
	assert.Contains(t, string(payload), `"status":"failed"`)
	assert.Len(t, repo.guests, 1)
}

func TestCreateGuestsEndpointWithoutWedding(t *testing.T) {
	srv := newInvitesTestServer(newFakeGuestRepo(false))
	defer srv.Close()

	body := `{"guests":[{"name":"Dana","telegramUsername":"@dana"}]}`
	resp, err := http.Post(srv.URL+"/api/invites", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Creating guests before the wedding exists is a failed precondition on
	// the caller's own data, not a lookup miss.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"wedding_required"`)
}

func TestSendInvitationsEndpointWithoutWedding(t *testing.T) {
	srv := newInvitesTestServer(newFakeGuestRepo(false))
	defer srv.Close()

	body := `{"guestIds":["guest-1"]}`
	resp, err := http.Post(srv.URL+"/api/invites/send", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"wedding_required"`)
}

func TestSendInvitationsEndpointReportsUnknownIDs(t *testing.T) {
	repo := newFakeGuestRepo(true)
	srv := newInvitesTestServer(repo)
	defer srv.Close()

	body := `{"guestIds":["missing-1"]}`
	resp, err := http.Post(srv.URL+"/api/invites/send", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"sent":false`)
	assert.Contains(t, string(payload), `"error":"not found"`)
}
