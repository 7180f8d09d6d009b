package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle state of a reservation.
// Reservations are owned by the booking component; this service only reads them.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation is a committed booking as seen by the availability engine
type Reservation struct {
	ID        int64
	TenantID  uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	PartySize int
	Status    ReservationStatus
}

// OccupiesCapacity returns true if the reservation counts against tables and covers
func (r *Reservation) OccupiesCapacity() bool {
	for _, s := range OccupyingStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// Overlaps reports whether the reservation intersects the half-open interval [start, end).
// A reservation ending exactly at start, or starting exactly at end, does not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}
