package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	notificationdomain "wedgram-api/internal/domain/notification"
	rsvpdomain "wedgram-api/internal/domain/rsvp"

	"github.com/go-chi/chi/v5"
)

type rsvpRecordResponse struct {
	ID                   string    `json:"id"`
	Response             string    `json:"response"`
	AttendingCount       int       `json:"attendingCount"`
	Message              *string   `json:"message,omitempty"`
	DietaryRestrictions  *string   `json:"dietaryRestrictions,omitempty"`
	SongRequests         *string   `json:"songRequests,omitempty"`
	AccommodationNeeded  bool      `json:"accommodationNeeded"`
	TransportationNeeded bool      `json:"transportationNeeded"`
	SubmittedAt          time.Time `json:"submittedAt"`
}

func toRSVPRecordResponse(rec *rsvpdomain.Record) *rsvpRecordResponse {
	if rec == nil {
		return nil
	}
	return &rsvpRecordResponse{
		ID:                   rec.ID,
		Response:             rec.Response,
		AttendingCount:       rec.AttendingCount,
		Message:              rec.Message,
		DietaryRestrictions:  rec.DietaryRestrictions,
		SongRequests:         rec.SongRequests,
		AccommodationNeeded:  rec.AccommodationNeeded,
		TransportationNeeded: rec.TransportationNeeded,
		SubmittedAt:          rec.CreatedAt,
	}
}

type rsvpGuestSummary struct {
	Name            string     `json:"name"`
	Invited         bool       `json:"invited"`
	HasRSVPed       bool       `json:"hasRSVPed"`
	RSVPStatus      string     `json:"rsvpStatus"`
	RSVPSubmittedAt *time.Time `json:"rsvpSubmittedAt,omitempty"`
}

func toRSVPGuestSummary(gv *rsvpdomain.GuestView) rsvpGuestSummary {
	return rsvpGuestSummary{
		Name:            gv.Name,
		Invited:         gv.Invited,
		HasRSVPed:       gv.HasRSVPed,
		RSVPStatus:      gv.RSVPStatus,
		RSVPSubmittedAt: gv.RSVPSubmittedAt,
	}
}

type rsvpWeddingResponse struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Venue string    `json:"venue"`
}

func toRSVPWeddingResponse(wv *rsvpdomain.WeddingView) *rsvpWeddingResponse {
	if wv == nil {
		return nil
	}
	return &rsvpWeddingResponse{Title: wv.Title, Date: wv.Date, Venue: wv.Venue}
}

func (h *Handlers) writeRSVPError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, rsvpdomain.ErrInvitationNotFound):
		writeError(w, http.StatusNotFound, "not_found", "invitation not found")
	case errors.Is(err, rsvpdomain.ErrWeddingNotFound):
		writeError(w, http.StatusNotFound, "not_found", "wedding not found")
	case errors.Is(err, rsvpdomain.ErrNotInvited):
		writeError(w, http.StatusBadRequest, "not_invited", "invitation has not been sent yet")
	case errors.Is(err, rsvpdomain.ErrAlreadySubmitted):
		writeError(w, http.StatusConflict, "already_submitted", "rsvp already submitted")
	case errors.Is(err, rsvpdomain.ErrInvalidResponse),
		errors.Is(err, rsvpdomain.ErrInvalidAttendingSize):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		h.log.InternalError(op+" failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

type submitRSVPRequest struct {
	Response             string `json:"response"`
	AttendingCount       int    `json:"attendingCount"`
	Message              string `json:"message"`
	DietaryRestrictions  string `json:"dietaryRestrictions"`
	SongRequests         string `json:"songRequests"`
	AccommodationNeeded  bool   `json:"accommodationNeeded"`
	TransportationNeeded bool   `json:"transportationNeeded"`
}

type submitRSVPResponse struct {
	RSVP    *rsvpRecordResponse  `json:"rsvp"`
	Guest   rsvpGuestSummary     `json:"guest"`
	Wedding *rsvpWeddingResponse `json:"wedding"`
}

func (h *Handlers) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var req submitRSVPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	out, err := h.RSVP.Submit(r.Context(), chi.URLParam(r, "token"), rsvpdomain.SubmitInput{
		Response:             req.Response,
		AttendingCount:       req.AttendingCount,
		Message:              req.Message,
		DietaryRestrictions:  req.DietaryRestrictions,
		SongRequests:         req.SongRequests,
		AccommodationNeeded:  req.AccommodationNeeded,
		TransportationNeeded: req.TransportationNeeded,
	})
	if err != nil {
		h.writeRSVPError(w, err, "rsvp.submit")
		return
	}

	if h.Notifications != nil {
		_, err := h.Notifications.Notify(r.Context(), out.Guest.InviterID, notificationdomain.TypeRSVPReceived,
			"RSVP received",
			fmt.Sprintf("%s responded: %s.", out.Guest.Name, out.Record.Response))
		if err != nil {
			h.log.InternalError("rsvp.submit: notify failed", err, "guest_id", out.Guest.ID)
		}
	}

	writeJSON(w, http.StatusOK, submitRSVPResponse{
		RSVP:    toRSVPRecordResponse(out.Record),
		Guest:   toRSVPGuestSummary(out.Guest),
		Wedding: toRSVPWeddingResponse(out.Wedding),
	})
}

type rsvpStatusResponse struct {
	Guest   rsvpGuestSummary     `json:"guest"`
	Wedding *rsvpWeddingResponse `json:"wedding"`
	RSVP    *rsvpRecordResponse  `json:"rsvp"`
}

func (h *Handlers) RSVPStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.RSVP.GetStatus(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.writeRSVPError(w, err, "rsvp.status")
		return
	}

	writeJSON(w, http.StatusOK, rsvpStatusResponse{
		Guest:   toRSVPGuestSummary(status.Guest),
		Wedding: toRSVPWeddingResponse(status.Wedding),
		RSVP:    toRSVPRecordResponse(status.Record),
	})
}
