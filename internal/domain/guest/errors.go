package guest

import "errors"

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrNoWedding       = errors.New("wedding details not found")
	ErrNoGuests        = errors.New("no guests provided")
	ErrMissingName     = errors.New("guest name is required")
	ErrMissingHandle   = errors.New("telegram username is required")
	ErrInvalidMethod   = errors.New("invalid invitation method")
	ErrInvalidStatus   = errors.New("invalid rsvp status filter")
	ErrMissingGuestIDs = errors.New("guest ids are required")
)
