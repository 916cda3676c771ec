package gantt

import "errors"

// Validation failures. Operations return them wrapped with the offending key
// or value; compare with errors.Is.
var (
	ErrDuplicateKey        = errors.New("track key already loaded")
	ErrDuplicateContentKey = errors.New("duplicate content key")
	ErrDuplicateTrackLabel = errors.New("track label already in use")
	ErrMissingTrackLabel   = errors.New("track label is missing")
	ErrMissingKey          = errors.New("key is missing")
	ErrMissingContent      = errors.New("content is missing")
	ErrMissingValues       = errors.New("values are missing")
	ErrMissingDate         = errors.New("date is missing")
	ErrActionLegendMissing = errors.New("no action legend entry for key")
	ErrInvalidDate         = errors.New("date is not ISO 8601")
	ErrInvalidDateRange    = errors.New("start date is after end date")
	ErrInvalidIndex        = errors.New("loadAtIndex must not be negative")
	ErrInvalidTrackHeight  = errors.New("track height must not be negative")
	ErrInvalidAxis         = errors.New("invalid axis")
	ErrContentNotLoaded    = errors.New("content not loaded")
)
