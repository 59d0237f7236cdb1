package handler

import (
	"errors"
	"net/http"
	"time"

	notificationdomain "wedgram-api/internal/domain/notification"
	"wedgram-api/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

type notificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handlers) writeNotificationError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, notificationdomain.ErrNotificationNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "notification not found")
		return
	}
	h.log.InternalError(op+" failed", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	page, limit, err := parsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	items, total, err := h.Notifications.List(r.Context(), claims.UserID, page, limit)
	if err != nil {
		h.writeNotificationError(w, err, "notifications.list")
		return
	}

	out := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, notificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": out,
		"total":         total,
	})
}

func (h *Handlers) UnreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	count, err := h.Notifications.UnreadCount(r.Context(), claims.UserID)
	if err != nil {
		h.writeNotificationError(w, err, "notifications.unread_count")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	if err := h.Notifications.MarkRead(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		h.writeNotificationError(w, err, "notifications.mark_read")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"read": true})
}

func (h *Handlers) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	if err := h.Notifications.MarkAllRead(r.Context(), claims.UserID); err != nil {
		h.writeNotificationError(w, err, "notifications.mark_all_read")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"read": true})
}

func (h *Handlers) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	if err := h.Notifications.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		h.writeNotificationError(w, err, "notifications.delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
