package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var windowValidator = newWindowValidator()

func newWindowValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(serviceWindowStructLevel, ServiceWindow{})
	return v
}

// serviceWindowStructLevel enforces open_time <= last_booking_time <= close_time.
// Windows crossing midnight cannot satisfy it and are rejected as well.
func serviceWindowStructLevel(sl validator.StructLevel) {
	w := sl.Current().Interface().(ServiceWindow)

	if w.LastBookingTime.IsBefore(w.OpenTime) {
		sl.ReportError(w.LastBookingTime, "LastBookingTime", "LastBookingTime", "after_open", w.OpenTime.String())
	}
	if w.CloseTime.IsBefore(w.LastBookingTime) {
		sl.ReportError(w.CloseTime, "CloseTime", "CloseTime", "after_last_booking", w.LastBookingTime.String())
	}
}

// Validate checks that the window can be used for slot generation
func (w *ServiceWindow) Validate() error {
	if err := windowValidator.Struct(w); err != nil {
		return fmt.Errorf("%w: window id=%d: %v", ErrMalformedWindow, w.ID, err)
	}
	return nil
}
