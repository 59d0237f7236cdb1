package wedding

import "errors"

var (
	ErrWeddingNotFound  = errors.New("wedding not found")
	ErrWeddingExists    = errors.New("wedding already exists")
	ErrImageNotFound    = errors.New("gallery image not found")
	ErrEventNotFound    = errors.New("schedule event not found")
	ErrInvalidStatus    = errors.New("invalid schedule status")
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingDate      = errors.New("date is required")
	ErrMissingVenue     = errors.New("venue is required")
	ErrMissingImageURL  = errors.New("image url is required")
	ErrMissingEventTime = errors.New("event time is required")
)
