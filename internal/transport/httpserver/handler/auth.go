package handler

import (
	"errors"
	"net/http"
	"time"

	"wedgram-api/internal/auth"
	accountdomain "wedgram-api/internal/domain/account"
	"wedgram-api/internal/transport/httpserver/middleware"
)

type userResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Role            string     `json:"role"`
	Active          bool       `json:"active"`
	WeddingDate     *time.Time `json:"weddingDate,omitempty"`
	PartnerName     *string    `json:"partnerName,omitempty"`
	WeddingLocation *string    `json:"weddingLocation,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func toUserResponse(acc *accountdomain.Account) userResponse {
	return userResponse{
		ID:              acc.ID,
		Name:            acc.Name,
		Email:           acc.Email,
		Phone:           acc.Phone,
		Role:            acc.Role,
		Active:          acc.Active,
		WeddingDate:     acc.WeddingDate,
		PartnerName:     acc.PartnerName,
		WeddingLocation: acc.WeddingLocation,
		CreatedAt:       acc.CreatedAt,
	}
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type registerRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	Phone           string     `json:"phone"`
	WeddingDate     *time.Time `json:"weddingDate"`
	PartnerName     string     `json:"partnerName"`
	WeddingLocation string     `json:"weddingLocation"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "validation_failed", "name, email and a password of at least 6 characters are required")
		return
	}

	acc, err := h.Accounts.Register(r.Context(), accountdomain.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Phone:           req.Phone,
		WeddingDate:     req.WeddingDate,
		PartnerName:     req.PartnerName,
		WeddingLocation: req.WeddingLocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, accountdomain.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
		case errors.Is(err, accountdomain.ErrInvalidEmail), errors.Is(err, accountdomain.ErrInvalidPhone):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		default:
			h.log.InternalError("auth.register failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	h.respondWithToken(w, http.StatusCreated, acc)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "email and password are required")
		return
	}

	acc, err := h.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accountdomain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		case errors.Is(err, accountdomain.ErrAccountInactive):
			writeError(w, http.StatusUnauthorized, "account_inactive", "account is deactivated")
		default:
			h.log.InternalError("auth.login failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	h.respondWithToken(w, http.StatusOK, acc)
}

func (h *Handlers) respondWithToken(w http.ResponseWriter, status int, acc *accountdomain.Account) {
	token, err := auth.GenerateToken(acc.ID, acc.Role, []byte(h.jwtCfg.Secret), h.jwtCfg.TokenTTL)
	if err != nil {
		h.log.InternalError("auth: token signing failed", err, "user_id", acc.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, status, authResponse{User: toUserResponse(acc), Token: token})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}

	acc, err := h.Accounts.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, accountdomain.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "account not found")
			return
		}
		h.log.InternalError("auth.me failed", err, "user_id", claims.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(acc))
}

type updateProfileRequest struct {
	Name            *string    `json:"name"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	WeddingDate     *time.Time `json:"weddingDate"`
	PartnerName     *string    `json:"partnerName"`
	WeddingLocation *string    `json:"weddingLocation"`
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	acc, err := h.Accounts.UpdateProfile(r.Context(), claims.UserID, accountdomain.ProfileUpdate{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		WeddingDate:     req.WeddingDate,
		PartnerName:     req.PartnerName,
		WeddingLocation: req.WeddingLocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, accountdomain.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, "not_found", "account not found")
		case errors.Is(err, accountdomain.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
		case errors.Is(err, accountdomain.ErrInvalidEmail), errors.Is(err, accountdomain.ErrInvalidPhone):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		default:
			h.log.InternalError("auth.update_me failed", err, "user_id", claims.UserID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(acc))
}

func (h *Handlers) DeactivateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}

	if err := h.Accounts.Deactivate(r.Context(), claims.UserID); err != nil {
		if errors.Is(err, accountdomain.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "account not found")
			return
		}
		h.log.InternalError("auth.deactivate failed", err, "user_id", claims.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deactivated": true})
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
