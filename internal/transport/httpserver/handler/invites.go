package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	guestdomain "wedgram-api/internal/domain/guest"
	notificationdomain "wedgram-api/internal/domain/notification"
	"wedgram-api/internal/transport/httpserver/middleware"
)

type guestResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               *string    `json:"email,omitempty"`
	TelegramUsername    string     `json:"telegramUsername"`
	Invited             bool       `json:"invited"`
	InvitationSentAt    *time.Time `json:"invitationSentAt,omitempty"`
	InvitationMethod    string     `json:"invitationMethod"`
	HasRSVPed           bool       `json:"hasRSVPed"`
	RSVPStatus          string     `json:"rsvpStatus"`
	RSVPSubmittedAt     *time.Time `json:"rsvpSubmittedAt,omitempty"`
	PlusOneAllowed      bool       `json:"plusOneAllowed"`
	PlusOneCount        int        `json:"plusOneCount"`
	DietaryRestrictions *string    `json:"dietaryRestrictions,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

func toGuestResponse(g *guestdomain.Guest) guestResponse {
	return guestResponse{
		ID:                  g.ID,
		Name:                g.Name,
		Email:               g.Email,
		TelegramUsername:    g.TelegramUsername,
		Invited:             g.Invited,
		InvitationSentAt:    g.InvitationSentAt,
		InvitationMethod:    g.InvitationMethod,
		HasRSVPed:           g.HasRSVPed,
		RSVPStatus:          g.RSVPStatus,
		RSVPSubmittedAt:     g.RSVPSubmittedAt,
		PlusOneAllowed:      g.PlusOneAllowed,
		PlusOneCount:        g.PlusOneCount,
		DietaryRestrictions: g.DietaryRestrictions,
		CreatedAt:           g.CreatedAt,
	}
}

// writeGuestError maps dispatch-flow errors. ErrNoWedding is not handled here:
// creating guests without wedding details is a failed precondition (400), while
// sending against a missing wedding is a lookup miss (404), so each handler
// maps it itself.
func (h *Handlers) writeGuestError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, guestdomain.ErrGuestNotFound):
		writeError(w, http.StatusNotFound, "not_found", "guest not found")
	case errors.Is(err, guestdomain.ErrNoGuests),
		errors.Is(err, guestdomain.ErrMissingGuestIDs),
		errors.Is(err, guestdomain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		h.log.InternalError(op+" failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

type guestSpecRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	TelegramUsername string `json:"telegramUsername"`
	InvitationMethod string `json:"invitationMethod"`
	PlusOneAllowed   bool   `json:"plusOneAllowed"`
}

type createGuestsRequest struct {
	Guests          []guestSpecRequest `json:"guests"`
	SendImmediately bool               `json:"sendImmediately"`
}

type createGuestsResponse struct {
	Results []guestdomain.CreateResult `json:"results"`
	Total   int                        `json:"total"`
}

func (h *Handlers) CreateGuests(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req createGuestsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	specs := make([]guestdomain.Spec, 0, len(req.Guests))
	for _, g := range req.Guests {
		specs = append(specs, guestdomain.Spec{
			Name:             g.Name,
			Email:            g.Email,
			TelegramUsername: g.TelegramUsername,
			InvitationMethod: g.InvitationMethod,
			PlusOneAllowed:   g.PlusOneAllowed,
		})
	}

	results, created, err := h.Guests.CreateGuests(r.Context(), claims.UserID, specs, req.SendImmediately)
	if err != nil {
		if errors.Is(err, guestdomain.ErrNoWedding) {
			writeError(w, http.StatusBadRequest, "wedding_required", "create wedding details first")
			return
		}
		h.writeGuestError(w, err, "invites.create")
		return
	}

	writeJSON(w, http.StatusOK, createGuestsResponse{Results: results, Total: created})
}

type listGuestsResponse struct {
	Guests []guestResponse      `json:"guests"`
	Meta   guestdomain.ListMeta `json:"meta"`
}

func (h *Handlers) ListGuests(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	page, limit, err := parsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	guests, meta, err := h.Guests.List(r.Context(), claims.UserID, guestdomain.ListFilter{
		Page:   page,
		Limit:  limit,
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		h.writeGuestError(w, err, "invites.list")
		return
	}

	items := make([]guestResponse, 0, len(guests))
	for i := range guests {
		items = append(items, toGuestResponse(&guests[i]))
	}

	writeJSON(w, http.StatusOK, listGuestsResponse{Guests: items, Meta: meta})
}

type sendInvitationsRequest struct {
	GuestIDs []string `json:"guestIds"`
}

type sendInvitationsResponse struct {
	Results []guestdomain.SendResult `json:"results"`
	Sent    int                      `json:"sent"`
	Total   int                      `json:"total"`
}

func (h *Handlers) SendInvitations(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req sendInvitationsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	results, sent, attempted, err := h.Guests.SendInvitations(r.Context(), claims.UserID, req.GuestIDs)
	if err != nil {
		if errors.Is(err, guestdomain.ErrNoWedding) {
			writeError(w, http.StatusNotFound, "wedding_required", "wedding details not found")
			return
		}
		h.writeGuestError(w, err, "invites.send")
		return
	}

	if sent > 0 && h.Notifications != nil {
		_, err := h.Notifications.Notify(r.Context(), claims.UserID, notificationdomain.TypeInvitesSent,
			"Invitations sent",
			fmt.Sprintf("%d of %d invitations were delivered.", sent, attempted))
		if err != nil {
			h.log.InternalError("invites.send: notify failed", err, "user_id", claims.UserID)
		}
	}

	writeJSON(w, http.StatusOK, sendInvitationsResponse{Results: results, Sent: sent, Total: attempted})
}
