package domain

import "github.com/google/uuid"

// Table is a physical table of the venue
type Table struct {
	ID        int64
	TenantID  uuid.UUID
	Name      string
	MinSeats  int
	MaxSeats  int
	Zone      string
	Active    bool
	SortOrder int

	// Combinable and CombineWithID describe table merging. They are loaded for
	// completeness but never consulted by slot generation.
	Combinable    bool
	CombineWithID *int64
}
