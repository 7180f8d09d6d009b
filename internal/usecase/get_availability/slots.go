package get_availability

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// usableWindows отбрасывает окна, нарушающие open <= last_booking <= close (и прочие ограничения домена)
// Такие окна не угадываем и не обрезаем, только пишем предупреждение
func usableWindows(windows []*domain.ServiceWindow, logger Logger) []*domain.ServiceWindow {
	result := make([]*domain.ServiceWindow, 0, len(windows))
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			logger.Warn("GetAvailability: skipping window id=%d name=%q: %v", w.ID, w.Name, err)
			continue
		}
		result = append(result, w)
	}
	return result
}

// slotStarts генерирует моменты начала слотов от open_time до last_booking_time включительно
// Шаг фиксированный (domain.SlotStepMinutes) и не зависит от turn_time_minutes окна
func slotStarts(window *domain.ServiceWindow, date time.Time) []time.Time {
	y, m, d := date.Date()
	loc := date.Location()

	starts := make([]time.Time, 0, window.SlotCount())
	for minute := window.OpenTime.Minutes(); minute <= window.LastBookingTime.Minutes(); minute += domain.SlotStepMinutes {
		starts = append(starts, time.Date(y, m, d, 0, minute, 0, 0, loc))
	}
	return starts
}

// buildWindowSlots вычисляет слоты одного окна
// totalTables - общий на весь день пул подходящих столов (не делится между окнами)
func buildWindowSlots(
	window *domain.ServiceWindow,
	date time.Time,
	totalTables int,
	reservations []*domain.Reservation,
	partySize int,
) []domain.Slot {
	starts := slotStarts(window, date)
	slots := make([]domain.Slot, len(starts))

	for i, start := range starts {
		end := start.Add(window.TurnTime())
		bookedTables, bookedCovers := countOverlapping(reservations, start, end)

		slots[i] = domain.NewSlot(start, end, totalTables, bookedTables, window.MaxCovers, bookedCovers, partySize)
	}

	return slots
}

// countOverlapping подсчитывает бронирования, пересекающиеся со слотом [start, end)
// Каждое бронирование занимает ровно один стол, гости суммируются по party_size
//
// Интервалы полуоткрытые:
// - Слот 12:00-13:30, бронирование 12:30-14:00 → ЕСТЬ пересечение
// - Слот 14:00-15:30, бронирование 12:30-14:00 → НЕТ пересечения (граничат)
// - Слот 11:00-12:30, бронирование 12:30-14:00 → НЕТ пересечения (граничат)
func countOverlapping(reservations []*domain.Reservation, start, end time.Time) (tables int, covers int) {
	for _, r := range reservations {
		// Емкость занимают только pending и confirmed
		if !r.OccupiesCapacity() {
			continue
		}
		if r.Overlaps(start, end) {
			tables++
			covers += r.PartySize
		}
	}
	return tables, covers
}
