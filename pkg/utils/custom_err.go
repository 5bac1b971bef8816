package utils

import "errors"

var (
	ErrDatabaseError     = errors.New("database error")
	ErrPlaceNotFound     = errors.New("place not found")
	ErrNoActiveJourney   = errors.New("no active journey")
	ErrJourneyActive     = errors.New("a journey is already active")
	ErrJourneyNotDone    = errors.New("journey is not completed yet")
	ErrEmptyRoute        = errors.New("route is empty")
	ErrRouteMinLength    = errors.New("route must keep at least one place")
	ErrAlreadyVisited    = errors.New("place already visited")
	ErrPhotoRequired     = errors.New("at least one photo is required to check in")
	ErrInsufficientCoins = errors.New("insufficient coin balance")
	ErrInvalidAmount     = errors.New("amount must be non-negative")
	ErrInvalidIndex      = errors.New("index out of range")
	ErrSuggestFailed     = errors.New("trip suggestion unavailable")
)
