package middleware

import (
	"context"

	"github.com/google/uuid"
)

// TenantResolver справочник активных арендаторов
type TenantResolver interface {
	GetIDBySlug(ctx context.Context, slug string) (uuid.UUID, error)
	EnsureActive(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
