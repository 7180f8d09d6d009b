package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-TableAvailability/internal/api/middleware"
	getAvailableDates "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_available_dates"
)

const (
	msgTenantRequired   = "заведение не определено"
	msgInvalidPartySize = "party_size должен быть целым числом не меньше 1"
	msgInvalidWeeks     = "weeks должен быть целым числом в допустимом диапазоне"
)

type Handler struct {
	useCase          GetAvailableDatesUseCase
	defaultPartySize int
	defaultWeeks     int
	logger           Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, defaultPartySize, defaultWeeks int, logger Logger) *Handler {
	return &Handler{
		useCase:          useCase,
		defaultPartySize: defaultPartySize,
		defaultWeeks:     defaultWeeks,
		logger:           logger,
	}
}

// Handle GET /api/v1/available-dates
// Query params: party_size (optional), weeks (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /available-dates - Tenant is not resolved")
		handlers.RespondBadRequest(w, handlers.CodeTenantRequired, msgTenantRequired)
		return
	}

	partySize, err := intParam(r, "party_size", h.defaultPartySize)
	if err != nil {
		h.logger.Warn("GET /available-dates - Invalid party_size: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidPartySize, msgInvalidPartySize)
		return
	}

	weeks, err := intParam(r, "weeks", h.defaultWeeks)
	if err != nil {
		h.logger.Warn("GET /available-dates - Invalid weeks: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidWeeks, msgInvalidWeeks)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		TenantID:  tenantID,
		PartySize: partySize,
		Weeks:     weeks,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidPartySize):
			h.logger.Warn("GET /available-dates - Invalid party size: tenant=%s, party_size=%d", tenantID, partySize)
			handlers.RespondBadRequest(w, handlers.CodeInvalidPartySize, msgInvalidPartySize)

		case errors.Is(err, getAvailableDates.ErrInvalidWeeks):
			h.logger.Warn("GET /available-dates - Invalid weeks: tenant=%s, weeks=%d", tenantID, weeks)
			handlers.RespondBadRequest(w, handlers.CodeInvalidWeeks, msgInvalidWeeks)

		case errors.Is(err, getAvailableDates.ErrTenantRequired):
			h.logger.Warn("GET /available-dates - Tenant is required")
			handlers.RespondBadRequest(w, handlers.CodeTenantRequired, msgTenantRequired)

		default:
			h.logger.Error("GET /available-dates - Failed to get dates: tenant=%s, party_size=%d, weeks=%d, error=%v",
				tenantID, partySize, weeks, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-dates - Dates retrieved: tenant=%s, party_size=%d, weeks=%d, dates=%d",
		tenantID, partySize, weeks, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// intParam целочисленный query параметр, def если параметр не передан
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
