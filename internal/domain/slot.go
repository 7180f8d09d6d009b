package domain

import "time"

// Slot is a discrete start time within a service window together with its remaining capacity
type Slot struct {
	StartTime       time.Time
	EndTime         time.Time
	TablesAvailable int // clamped at zero
	CoversRemaining int // signed: negative means the window is over-booked
	HasCapacity     bool
}

// NewSlot computes the capacity figures of a slot.
// totalTables is the day-wide pool of qualifying tables, bookedTables and bookedCovers
// come from reservations overlapping [start, end).
func NewSlot(start, end time.Time, totalTables, bookedTables, maxCovers, bookedCovers, partySize int) Slot {
	tablesAvailable := totalTables - bookedTables
	if tablesAvailable < 0 {
		tablesAvailable = 0
	}
	coversRemaining := maxCovers - bookedCovers

	return Slot{
		StartTime:       start,
		EndTime:         end,
		TablesAvailable: tablesAvailable,
		CoversRemaining: coversRemaining,
		HasCapacity:     tablesAvailable > 0 && coversRemaining >= partySize,
	}
}

// IsFull returns true if no table is left in the slot
func (s *Slot) IsFull() bool {
	return s.TablesAvailable <= 0
}

// IsOverbooked returns true if booked covers exceed the window ceiling
func (s *Slot) IsOverbooked() bool {
	return s.CoversRemaining < 0
}
