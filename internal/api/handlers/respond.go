package handlers

import (
	"encoding/json"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeTenantRequired   = "tenant_required"
	CodeTenantNotFound   = "tenant_not_found"
	CodeInvalidDate      = "invalid_date"
	CodeInvalidPartySize = "invalid_party_size"
	CodeInvalidWeeks     = "invalid_weeks"
	CodeTooManyRequests  = "too_many_requests"
	CodeInternal         = "internal_error"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет ошибку в формате {"error": code, "message": message}
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondInternalError 500, детали ошибки наружу не отдаются
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternalError)
}
