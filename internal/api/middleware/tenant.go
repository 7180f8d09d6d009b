package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	tenantRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/tenant"
)

// TenantHeader заголовок с идентификатором заведения (uuid или slug)
const TenantHeader = "X-Tenant"

const (
	msgTenantRequired = "заголовок X-Tenant обязателен"
	msgTenantNotFound = "заведение не найдено"
)

type tenantCtxKey struct{}

// Tenant определяет арендатора по заголовку X-Tenant и кладет его id в контекст запроса
func Tenant(resolver TenantResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(TenantHeader))
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, TenantHeader)
				handlers.RespondBadRequest(w, handlers.CodeTenantRequired, msgTenantRequired)
				return
			}

			// uuid проверяем на существование и активность, иначе считаем значение slug
			tenantID, err := uuid.Parse(raw)
			if err == nil {
				err = resolver.EnsureActive(r.Context(), tenantID)
			} else {
				tenantID, err = resolver.GetIDBySlug(r.Context(), raw)
			}

			switch {
			case errors.Is(err, tenantRepo.ErrTenantNotFound):
				logger.Warn("%s %s - Tenant not found: tenant=%s", r.Method, r.URL.Path, raw)
				handlers.RespondBadRequest(w, handlers.CodeTenantNotFound, msgTenantNotFound)
				return
			case err != nil:
				logger.Error("%s %s - Failed to resolve tenant: tenant=%s, error=%v", r.Method, r.URL.Path, raw, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenantID)))
		})
	}
}

// WithTenant возвращает контекст с id арендатора
func WithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantCtxKey{}, tenantID)
}

// TenantFromContext id арендатора, определенный middleware Tenant
func TenantFromContext(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(tenantCtxKey{}).(uuid.UUID)
	return tenantID, ok && tenantID != uuid.Nil
}
