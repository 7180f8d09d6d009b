package domain

import "errors"

var (
	// ErrMalformedWindow is returned when a service window violates open <= last_booking <= close
	// or carries an impossible turn time, cover ceiling or weekday
	ErrMalformedWindow = errors.New("domain: malformed service window")
)
