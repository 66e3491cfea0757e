// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"sync"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register installs the tags on gin's validator engine. Safe to call more
// than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("gin validator engine is not go-playground/validator")
			return
		}
		err = RegisterOn(v)
	})
	return err
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("payment_mode", validatePaymentMode); err != nil {
		return errs.Wrap(err, "register payment_mode validation")
	}
	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		return errs.Wrap(err, "register booking_status validation")
	}
	return nil
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	return booking.PaymentMode(fl.Field().String()).IsValid()
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return booking.Status(fl.Field().String()).IsValid()
}
