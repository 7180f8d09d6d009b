package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-TableAvailability/internal/api/middleware"
	getAvailability "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_availability"
)

const (
	msgTenantRequired   = "заведение не определено"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize = "party_size должен быть целым числом не меньше 1"
)

type Handler struct {
	useCase          GetAvailabilityUseCase
	defaultPartySize int
	logger           Logger
}

func NewHandler(useCase GetAvailabilityUseCase, defaultPartySize int, logger Logger) *Handler {
	return &Handler{
		useCase:          useCase,
		defaultPartySize: defaultPartySize,
		logger:           logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), party_size (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /availability - Tenant is not resolved")
		handlers.RespondBadRequest(w, handlers.CodeTenantRequired, msgTenantRequired)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date: tenant=%s", tenantID)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgMissingDate)
		return
	}

	// Извлекаем party_size, по умолчанию - значение из конфигурации
	partySize := h.defaultPartySize
	if raw := r.URL.Query().Get("party_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid party_size %q: %v", raw, err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidPartySize, msgInvalidPartySize)
			return
		}
		partySize = parsed
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(tenantID, dateStr, partySize)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidPartySize):
			h.logger.Warn("GET /availability - Invalid party size: tenant=%s, party_size=%d", tenantID, partySize)
			handlers.RespondBadRequest(w, handlers.CodeInvalidPartySize, msgInvalidPartySize)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: tenant=%s, date=%s", tenantID, dateStr)
			handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrTenantRequired):
			h.logger.Warn("GET /availability - Tenant is required")
			handlers.RespondBadRequest(w, handlers.CodeTenantRequired, msgTenantRequired)

		default:
			h.logger.Error("GET /availability - Failed to get availability: tenant=%s, date=%s, party_size=%d, error=%v",
				tenantID, dateStr, partySize, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved: tenant=%s, date=%s, party_size=%d, windows=%d, reason=%q",
		tenantID, dateStr, partySize, len(result.Windows), result.Reason)
	handlers.RespondJSON(w, http.StatusOK, response)
}
