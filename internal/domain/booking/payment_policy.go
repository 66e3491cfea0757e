package booking

import (
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ServiceSpec is the read-only view of a bookable service.
type ServiceSpec struct {
	ID                  uuid.UUID
	Name                string
	Price               Money
	CurrencyCode        string
	Deposit             DepositPolicy
	PaymentModesAllowed []PaymentCategory
}

var defaultCategories = []PaymentCategory{CategoryInPerson, CategoryOnline}

func (s ServiceSpec) AllowedCategories() []PaymentCategory {
	if len(s.PaymentModesAllowed) == 0 {
		return defaultCategories
	}
	return s.PaymentModesAllowed
}

func (s ServiceSpec) allows(category PaymentCategory) bool {
	for _, c := range s.AllowedCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// ValidatePaymentMode decides whether mode may be used to book svc.
func ValidatePaymentMode(mode PaymentMode, svc ServiceSpec) error {
	if !mode.IsValid() {
		return errs.InvalidDataf("unknown payment mode %q", mode)
	}
	if !svc.allows(mode.Category()) {
		return errs.NotAllowedf("payment mode %s (%s) is not allowed for service %s; allowed: %v",
			mode, mode.Category(), svc.ID, svc.AllowedCategories())
	}

	hasDeposit := svc.Deposit.HasDeposit()
	if mode == PaymentModePayInStore && hasDeposit {
		return errs.NotAllowedf("service %s requires a %s deposit; pay_in_store is not allowed",
			svc.ID, svc.Deposit.Type())
	}
	if mode == PaymentModeDeposit && !hasDeposit {
		return errs.InvalidDataf("service %s has no deposit configured; deposit payment is impossible", svc.ID)
	}
	return nil
}

// PayableAmount is what the customer owes online to confirm the hold.
func PayableAmount(mode PaymentMode, svc ServiceSpec) (Money, error) {
	switch mode {
	case PaymentModeDeposit:
		return svc.Deposit.Amount(svc.Price)
	case PaymentModeFull:
		return svc.Price, nil
	case PaymentModePayInStore:
		return NewMoney(0), nil
	default:
		return Money{}, errs.InvalidDataf("unknown payment mode %q", mode)
	}
}
