package utils

import "errors"

var (
	ErrEmptyQuery                 = errors.New("query is empty")
	ErrUnresolvedLocation         = errors.New("location could not be resolved")
	ErrInsufficientStops          = errors.New("not enough resolved stops for an itinerary")
	ErrInvalidTimeFormat          = errors.New("invalid time format")
	ErrModelOutputInvalid         = errors.New("model output failed validation")
	ErrPlaceNotFound              = errors.New("no venue found")
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
)
