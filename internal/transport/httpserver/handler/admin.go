package handler

import (
	"errors"
	"net/http"

	accountdomain "wedgram-api/internal/domain/account"
	admindomain "wedgram-api/internal/domain/admin"
)

func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Admin.Stats(r.Context())
	if err != nil {
		h.log.InternalError("admin.stats failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

type adminUsersResponse struct {
	Users []admindomain.UserRow `json:"users"`
	Meta  admindomain.PageMeta  `json:"meta"`
}

func (h *Handlers) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	users, meta, err := h.Admin.ListUsers(r.Context(), page, limit)
	if err != nil {
		h.log.InternalError("admin.users failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, adminUsersResponse{Users: users, Meta: meta})
}

type adminGuestsResponse struct {
	Guests []admindomain.GuestRow `json:"guests"`
	Meta   admindomain.PageMeta   `json:"meta"`
}

func (h *Handlers) AdminListGuests(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	guests, meta, err := h.Admin.ListGuests(r.Context(), page, limit)
	if err != nil {
		h.log.InternalError("admin.guests failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, adminGuestsResponse{Guests: guests, Meta: meta})
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "validation_failed", "name, email and a password of at least 6 characters are required")
		return
	}

	acc, err := h.Accounts.CreateAdmin(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accountdomain.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
		case errors.Is(err, accountdomain.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		default:
			h.log.InternalError("admin.create_user failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(acc))
}
