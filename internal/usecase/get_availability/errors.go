package get_availability

import "errors"

var (
	// ErrTenantRequired возвращается, когда не передан арендатор
	ErrTenantRequired = errors.New("tenant is required")

	// ErrInvalidDate возвращается при отсутствующей или некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPartySize возвращается при размере компании меньше 1
	ErrInvalidPartySize = errors.New("invalid party size")

	// ErrInternal возвращается при внутренних ошибках usecase (ошибки хранилища)
	ErrInternal = errors.New("usecase: internal error")
)
