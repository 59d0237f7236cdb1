package handler

import (
	"errors"
	"net/http"
	"time"

	giftdomain "wedgram-api/internal/domain/gift"
	"wedgram-api/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

type giftResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Link        *string   `json:"link,omitempty"`
	ReservedBy  *string   `json:"reservedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toGiftResponse(g *giftdomain.Gift) giftResponse {
	return giftResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		Currency:    g.Currency,
		Category:    g.Category,
		Status:      g.Status,
		Link:        g.Link,
		ReservedBy:  g.ReservedBy,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (h *Handlers) writeGiftError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, giftdomain.ErrWeddingNotFound):
		writeError(w, http.StatusNotFound, "wedding_required", "create wedding details first")
	case errors.Is(err, giftdomain.ErrGiftNotFound):
		writeError(w, http.StatusNotFound, "not_found", "gift not found")
	case errors.Is(err, giftdomain.ErrMissingName),
		errors.Is(err, giftdomain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		h.log.InternalError(op+" failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

type createGiftRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Link        string  `json:"link"`
}

func (h *Handlers) CreateGift(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req createGiftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	gift, err := h.Gifts.Create(r.Context(), claims.UserID, giftdomain.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Link:        req.Link,
	})
	if err != nil {
		h.writeGiftError(w, err, "gifts.create")
		return
	}

	writeJSON(w, http.StatusCreated, toGiftResponse(gift))
}

func (h *Handlers) ListGifts(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	gifts, err := h.Gifts.List(r.Context(), claims.UserID)
	if err != nil {
		h.writeGiftError(w, err, "gifts.list")
		return
	}

	items := make([]giftResponse, 0, len(gifts))
	for i := range gifts {
		items = append(items, toGiftResponse(&gifts[i]))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"gifts": items})
}

func (h *Handlers) GetGift(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	gift, err := h.Gifts.Get(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeGiftError(w, err, "gifts.get")
		return
	}

	writeJSON(w, http.StatusOK, toGiftResponse(gift))
}

type updateGiftRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Currency    *string  `json:"currency"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Link        *string  `json:"link"`
	ReservedBy  *string  `json:"reservedBy"`
}

func (h *Handlers) UpdateGift(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req updateGiftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	gift, err := h.Gifts.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"), giftdomain.Update{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Status:      req.Status,
		Link:        req.Link,
		ReservedBy:  req.ReservedBy,
	})
	if err != nil {
		h.writeGiftError(w, err, "gifts.update")
		return
	}

	writeJSON(w, http.StatusOK, toGiftResponse(gift))
}

func (h *Handlers) DeleteGift(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	if err := h.Gifts.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		h.writeGiftError(w, err, "gifts.delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handlers) GiftStats(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	stats, err := h.Gifts.Stats(r.Context(), claims.UserID)
	if err != nil {
		h.writeGiftError(w, err, "gifts.stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
