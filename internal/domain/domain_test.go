package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

func TestWeekdayOf_MondayIsZero(t *testing.T) {
	// 2026-10-19 is a Monday
	monday := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayOf(monday.AddDate(0, 0, i)))
	}
	assert.Equal(t, 6, WeekdayOf(time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC)))
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	start, end := DayBounds(time.Date(2026, time.October, 19, 15, 4, 5, 0, loc))

	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, time.October, 20, 0, 0, 0, 0, loc), end)
}

func TestReservation_Overlaps_HalfOpen(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2026, time.October, 19, h, m, 0, 0, time.UTC) }
	r := Reservation{StartTime: at(12, 30), EndTime: at(14, 0)}

	assert.True(t, r.Overlaps(at(12, 0), at(13, 30)))
	assert.True(t, r.Overlaps(at(13, 0), at(13, 15)))
	assert.False(t, r.Overlaps(at(14, 0), at(15, 30)), "ending exactly at slot start must not overlap")
	assert.False(t, r.Overlaps(at(11, 0), at(12, 30)), "starting exactly at slot end must not overlap")
}

func TestReservation_OccupiesCapacity(t *testing.T) {
	for status, want := range map[ReservationStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: false,
		StatusCancelled: false,
		StatusNoShow:    false,
	} {
		r := Reservation{Status: status}
		assert.Equal(t, want, r.OccupiesCapacity(), status)
	}
}

func TestNewSlot(t *testing.T) {
	start := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	t.Run("tables clamp at zero, covers stay signed", func(t *testing.T) {
		s := NewSlot(start, end, 2, 5, 10, 14, 2)
		assert.Equal(t, 0, s.TablesAvailable)
		assert.Equal(t, -4, s.CoversRemaining)
		assert.False(t, s.HasCapacity)
		assert.True(t, s.IsFull())
		assert.True(t, s.IsOverbooked())
	})

	t.Run("covers equal to party size still fit", func(t *testing.T) {
		s := NewSlot(start, end, 3, 1, 20, 16, 4)
		assert.Equal(t, 2, s.TablesAvailable)
		assert.Equal(t, 4, s.CoversRemaining)
		assert.True(t, s.HasCapacity)
	})

	t.Run("covers short of party size", func(t *testing.T) {
		s := NewSlot(start, end, 3, 1, 20, 17, 4)
		assert.False(t, s.HasCapacity)
	})
}

func TestServiceWindow_SlotCount(t *testing.T) {
	w := ServiceWindow{
		OpenTime:        types.MustTimeOfDay("12:00"),
		LastBookingTime: types.MustTimeOfDay("14:00"),
	}
	assert.Equal(t, 9, w.SlotCount())

	w.LastBookingTime = types.MustTimeOfDay("14:10")
	assert.Equal(t, 9, w.SlotCount())

	w.LastBookingTime = types.MustTimeOfDay("12:00")
	assert.Equal(t, 1, w.SlotCount())

	w.LastBookingTime = types.MustTimeOfDay("11:00")
	assert.Equal(t, 0, w.SlotCount())
}

func TestServiceWindow_Validate(t *testing.T) {
	valid := func() ServiceWindow {
		return ServiceWindow{
			ID:              1,
			Name:            "Lunch",
			DayOfWeek:       0,
			OpenTime:        types.MustTimeOfDay("12:00"),
			CloseTime:       types.MustTimeOfDay("14:30"),
			LastBookingTime: types.MustTimeOfDay("14:00"),
			TurnTimeMinutes: 90,
			MaxCovers:       20,
			Active:          true,
		}
	}

	w := valid()
	assert.NoError(t, w.Validate())

	tests := map[string]func(w *ServiceWindow){
		"last booking before open": func(w *ServiceWindow) { w.LastBookingTime = types.MustTimeOfDay("11:45") },
		"close before last booking": func(w *ServiceWindow) { w.CloseTime = types.MustTimeOfDay("13:00") },
		"turn time below minimum":   func(w *ServiceWindow) { w.TurnTimeMinutes = 10 },
		"zero covers":               func(w *ServiceWindow) { w.MaxCovers = 0 },
		"weekday out of range":      func(w *ServiceWindow) { w.DayOfWeek = 7 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			w := valid()
			mutate(&w)
			assert.ErrorIs(t, w.Validate(), ErrMalformedWindow)
		})
	}
}
