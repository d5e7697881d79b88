package usecase

import "errors"

// Error taxonomy the handlers translate into HTTP responses. Validation and
// unsupported-media failures mean the operation was never attempted; a
// persistence failure means the backend write did not happen.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrPersistence      = errors.New("persistence failure")
)
