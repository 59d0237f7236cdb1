package gift

import "errors"

var (
	ErrGiftNotFound    = errors.New("gift not found")
	ErrWeddingNotFound = errors.New("wedding not found")
	ErrMissingName     = errors.New("gift name is required")
	ErrInvalidStatus   = errors.New("invalid gift status")
)
