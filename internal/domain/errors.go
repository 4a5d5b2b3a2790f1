package domain

import "errors"

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
)

// ValidationError reports a missing or malformed client-supplied field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
