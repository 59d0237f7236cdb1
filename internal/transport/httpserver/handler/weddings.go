package handler

import (
	"errors"
	"net/http"
	"time"

	weddingdomain "wedgram-api/internal/domain/wedding"
	"wedgram-api/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

type weddingResponse struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  *string                 `json:"description,omitempty"`
	Date         time.Time               `json:"date"`
	Venue        string                  `json:"venue"`
	VenueAddress *string                 `json:"venueAddress,omitempty"`
	DressCode    *string                 `json:"dressCode,omitempty"`
	ThemeColor   string                  `json:"themeColor"`
	CoverImage   *string                 `json:"coverImage,omitempty"`
	Gallery      []galleryImageResponse  `json:"gallery"`
	Schedule     []scheduleEventResponse `json:"schedule"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

type galleryImageResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	Description *string   `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type scheduleEventResponse struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Event       string  `json:"event"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Responsible *string `json:"responsible,omitempty"`
	Status      string  `json:"status"`
}

func toWeddingResponse(w *weddingdomain.Wedding) weddingResponse {
	gallery := make([]galleryImageResponse, 0, len(w.Gallery))
	for _, img := range w.Gallery {
		gallery = append(gallery, galleryImageResponse{
			ID:          img.ID,
			URL:         img.URL,
			Name:        img.Name,
			Size:        img.Size,
			Description: img.Description,
			UploadedAt:  img.UploadedAt,
		})
	}
	schedule := make([]scheduleEventResponse, 0, len(w.Schedule))
	for _, ev := range w.Schedule {
		schedule = append(schedule, scheduleEventResponse{
			ID:          ev.ID,
			Time:        ev.Time,
			Event:       ev.Event,
			Description: ev.Description,
			Location:    ev.Location,
			Responsible: ev.Responsible,
			Status:      ev.Status,
		})
	}
	return weddingResponse{
		ID:           w.ID,
		Title:        w.Title,
		Description:  w.Description,
		Date:         w.Date,
		Venue:        w.Venue,
		VenueAddress: w.VenueAddress,
		DressCode:    w.DressCode,
		ThemeColor:   w.ThemeColor,
		CoverImage:   w.CoverImage,
		Gallery:      gallery,
		Schedule:     schedule,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func (h *Handlers) writeWeddingError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, weddingdomain.ErrWeddingNotFound):
		writeError(w, http.StatusNotFound, "not_found", "wedding not found")
	case errors.Is(err, weddingdomain.ErrWeddingExists):
		writeError(w, http.StatusConflict, "wedding_exists", "wedding already exists")
	case errors.Is(err, weddingdomain.ErrImageNotFound):
		writeError(w, http.StatusNotFound, "not_found", "gallery image not found")
	case errors.Is(err, weddingdomain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "not_found", "schedule event not found")
	case errors.Is(err, weddingdomain.ErrMissingTitle),
		errors.Is(err, weddingdomain.ErrMissingDate),
		errors.Is(err, weddingdomain.ErrMissingVenue),
		errors.Is(err, weddingdomain.ErrMissingImageURL),
		errors.Is(err, weddingdomain.ErrMissingEventTime),
		errors.Is(err, weddingdomain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		h.log.InternalError(op+" failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

type createWeddingRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Venue        string    `json:"venue"`
	VenueAddress string    `json:"venueAddress"`
	DressCode    string    `json:"dressCode"`
	ThemeColor   string    `json:"themeColor"`
	CoverImage   string    `json:"coverImage"`
}

func (h *Handlers) CreateWedding(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req createWeddingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	wedding, err := h.Weddings.Create(r.Context(), claims.UserID, weddingdomain.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Venue:        req.Venue,
		VenueAddress: req.VenueAddress,
		DressCode:    req.DressCode,
		ThemeColor:   req.ThemeColor,
		CoverImage:   req.CoverImage,
	})
	if err != nil {
		h.writeWeddingError(w, err, "weddings.create")
		return
	}

	writeJSON(w, http.StatusCreated, toWeddingResponse(wedding))
}

func (h *Handlers) GetWedding(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	wedding, err := h.Weddings.GetByAccount(r.Context(), claims.UserID)
	if err != nil {
		h.writeWeddingError(w, err, "weddings.get")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(wedding))
}

func (h *Handlers) CheckWedding(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	exists, err := h.Weddings.Exists(r.Context(), claims.UserID)
	if err != nil {
		h.writeWeddingError(w, err, "weddings.check")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

type updateWeddingRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	Venue        *string    `json:"venue"`
	VenueAddress *string    `json:"venueAddress"`
	DressCode    *string    `json:"dressCode"`
	ThemeColor   *string    `json:"themeColor"`
	CoverImage   *string    `json:"coverImage"`
}

func (h *Handlers) UpdateWedding(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req updateWeddingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	wedding, err := h.Weddings.Update(r.Context(), claims.UserID, weddingdomain.Update{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Venue:        req.Venue,
		VenueAddress: req.VenueAddress,
		DressCode:    req.DressCode,
		ThemeColor:   req.ThemeColor,
		CoverImage:   req.CoverImage,
	})
	if err != nil {
		h.writeWeddingError(w, err, "weddings.update")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(wedding))
}

type galleryImageRequest struct {
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Size        int64   `json:"size"`
	Description *string `json:"description"`
}

func (r galleryImageRequest) toDomain() weddingdomain.GalleryImage {
	return weddingdomain.GalleryImage{
		URL:         r.URL,
		Name:        r.Name,
		Size:        r.Size,
		Description: r.Description,
	}
}

func (h *Handlers) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req galleryImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	image, err := h.Weddings.AddGalleryImage(r.Context(), claims.UserID, req.toDomain())
	if err != nil {
		h.writeWeddingError(w, err, "weddings.gallery.add")
		return
	}

	writeJSON(w, http.StatusCreated, galleryImageResponse{
		ID:          image.ID,
		URL:         image.URL,
		Name:        image.Name,
		Size:        image.Size,
		Description: image.Description,
		UploadedAt:  image.UploadedAt,
	})
}

func (h *Handlers) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	if err := h.Weddings.DeleteGalleryImage(r.Context(), claims.UserID, chi.URLParam(r, "image_id")); err != nil {
		h.writeWeddingError(w, err, "weddings.gallery.delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

type replaceGalleryRequest struct {
	Images []galleryImageRequest `json:"images"`
}

func (h *Handlers) ReplaceGallery(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req replaceGalleryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	images := make([]weddingdomain.GalleryImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, img.toDomain())
	}

	wedding, err := h.Weddings.ReplaceGallery(r.Context(), claims.UserID, images)
	if err != nil {
		h.writeWeddingError(w, err, "weddings.gallery.replace")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(wedding))
}

type scheduleEventRequest struct {
	Time        string  `json:"time"`
	Event       string  `json:"event"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Responsible *string `json:"responsible"`
	Status      string  `json:"status"`
}

func (r scheduleEventRequest) toDomain() weddingdomain.ScheduleEvent {
	return weddingdomain.ScheduleEvent{
		Time:        r.Time,
		Event:       r.Event,
		Description: r.Description,
		Location:    r.Location,
		Responsible: r.Responsible,
		Status:      r.Status,
	}
}

func (h *Handlers) AddScheduleEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req scheduleEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	event, err := h.Weddings.AddScheduleEvent(r.Context(), claims.UserID, req.toDomain())
	if err != nil {
		h.writeWeddingError(w, err, "weddings.schedule.add")
		return
	}

	writeJSON(w, http.StatusCreated, scheduleEventResponse{
		ID:          event.ID,
		Time:        event.Time,
		Event:       event.Event,
		Description: event.Description,
		Location:    event.Location,
		Responsible: event.Responsible,
		Status:      event.Status,
	})
}

func (h *Handlers) UpdateScheduleEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req scheduleEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	event, err := h.Weddings.UpdateScheduleEvent(r.Context(), claims.UserID, chi.URLParam(r, "event_id"), req.toDomain())
	if err != nil {
		h.writeWeddingError(w, err, "weddings.schedule.update")
		return
	}

	writeJSON(w, http.StatusOK, scheduleEventResponse{
		ID:          event.ID,
		Time:        event.Time,
		Event:       event.Event,
		Description: event.Description,
		Location:    event.Location,
		Responsible: event.Responsible,
		Status:      event.Status,
	})
}

func (h *Handlers) DeleteScheduleEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	if err := h.Weddings.DeleteScheduleEvent(r.Context(), claims.UserID, chi.URLParam(r, "event_id")); err != nil {
		h.writeWeddingError(w, err, "weddings.schedule.delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

type replaceScheduleRequest struct {
	Events []scheduleEventRequest `json:"events"`
}

func (h *Handlers) ReplaceSchedule(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req replaceScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
		return
	}

	events := make([]weddingdomain.ScheduleEvent, 0, len(req.Events))
	for _, ev := range req.Events {
		events = append(events, ev.toDomain())
	}

	wedding, err := h.Weddings.ReplaceSchedule(r.Context(), claims.UserID, events)
	if err != nil {
		h.writeWeddingError(w, err, "weddings.schedule.replace")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(wedding))
}
