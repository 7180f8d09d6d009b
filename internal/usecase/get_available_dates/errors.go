package get_available_dates

import "errors"

var (
	// ErrTenantRequired возвращается, когда не передан арендатор
	ErrTenantRequired = errors.New("tenant is required")

	// ErrInvalidPartySize возвращается при размере компании меньше 1
	ErrInvalidPartySize = errors.New("invalid party size")

	// ErrInvalidWeeks возвращается при горизонте вне допустимого диапазона
	ErrInvalidWeeks = errors.New("invalid weeks")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
