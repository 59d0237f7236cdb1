package rsvp

import "errors"

var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrWeddingNotFound      = errors.New("wedding not found")
	ErrNotInvited           = errors.New("invitation not sent yet")
	ErrAlreadySubmitted     = errors.New("rsvp already submitted")
	ErrRecordNotFound       = errors.New("rsvp record not found")
	ErrInvalidResponse      = errors.New("invalid response")
	ErrInvalidAttendingSize = errors.New("attending count must be at least 1")
)
