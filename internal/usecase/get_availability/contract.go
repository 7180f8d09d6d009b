package get_availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// TableRepository каталог столов
type TableRepository interface {
	// ListQualifying активные столы с max_seats >= minCapacity
	ListQualifying(ctx context.Context, tenantID uuid.UUID, minCapacity int) ([]*domain.Table, error)
}

// WindowRepository реестр окон обслуживания
type WindowRepository interface {
	// ListActiveByWeekday активные окна на день недели (0=понедельник), по возрастанию open_time
	ListActiveByWeekday(ctx context.Context, tenantID uuid.UUID, weekday int) ([]*domain.ServiceWindow, error)
}

// ReservationRepository журнал бронирований (владелец - сервис бронирований)
type ReservationRepository interface {
	// ListOccupying бронирования pending/confirmed с началом в [from, to)
	ListOccupying(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
