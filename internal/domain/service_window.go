package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// ServiceWindow is a recurring weekly operating interval, e.g. Lunch 12:00-14:30 on Mondays
type ServiceWindow struct {
	ID              int64
	TenantID        uuid.UUID
	Name            string
	DayOfWeek       int             `validate:"min=0,max=6"` // 0=Monday ... 6=Sunday
	OpenTime        types.TimeOfDay
	CloseTime       types.TimeOfDay
	LastBookingTime types.TimeOfDay // latest time a booking can start
	TurnTimeMinutes int             `validate:"min=15"`
	MaxCovers       int             `validate:"min=1"`
	Active          bool
}

// TurnTime returns the occupancy duration assumed for every booking in the window
func (w *ServiceWindow) TurnTime() time.Duration {
	return time.Duration(w.TurnTimeMinutes) * time.Minute
}

// SlotCount returns the number of slot starts between OpenTime and LastBookingTime inclusive
func (w *ServiceWindow) SlotCount() int {
	span := w.LastBookingTime.Minutes() - w.OpenTime.Minutes()
	if span < 0 {
		return 0
	}
	return span/SlotStepMinutes + 1
}
