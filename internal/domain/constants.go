package domain

// SlotStepMinutes is the fixed cadence of slot start times, independent of turn time
const SlotStepMinutes = 15

// Business validation constants
const (
	MinTurnTimeMinutes = 15
	MinPartySize       = 1
	MinHorizonWeeks    = 1
)

// Default query values
const (
	DefaultPartySize    = 2
	DefaultHorizonWeeks = 4
	MaxHorizonWeeks     = 26
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Unsatisfiable query reasons
const (
	ReasonClosed   = "closed"
	ReasonNoTables = "no_tables"
)

// OccupyingStatuses lists reservation statuses that consume tables and covers
var OccupyingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
