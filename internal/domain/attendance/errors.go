package attendance

import "errors"

var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrDeviceMismatch   = errors.New("device does not match the enrolled device")

	// Check-out errors
	ErrNoActiveSession = errors.New("no active check-in found")

	// General errors
	ErrSessionNotFound = errors.New("attendance session not found")
)
