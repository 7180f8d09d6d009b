package get_available_dates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// TableRepository каталог столов
type TableRepository interface {
	ListQualifying(ctx context.Context, tenantID uuid.UUID, minCapacity int) ([]*domain.Table, error)
}

// WindowRepository реестр окон обслуживания
type WindowRepository interface {
	// ListActiveWeekdays дни недели (0=понедельник), в которые есть активные окна
	ListActiveWeekdays(ctx context.Context, tenantID uuid.UUID) ([]int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
