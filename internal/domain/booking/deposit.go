package booking

import (
	"strings"

	"salon-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type DepositType string

const (
	DepositTypeNone       DepositType = "none"
	DepositTypeFixed      DepositType = "fixed"
	DepositTypePercentage DepositType = "percentage"
)

var hundred = decimal.NewFromInt(100)

// DepositPolicy is the normalized form of a service's deposit configuration.
// Whatever representation the catalog stores is converted once, here.
type DepositPolicy struct {
	kind  DepositType
	value decimal.Decimal
	set   bool
}

func NoDeposit() DepositPolicy {
	return DepositPolicy{kind: DepositTypeNone}
}

func FixedDeposit(amount int64) DepositPolicy {
	return DepositPolicy{kind: DepositTypeFixed, value: decimal.NewFromInt(amount), set: true}
}

// FixedDepositUnset models a fixed deposit whose amount was never configured.
func FixedDepositUnset() DepositPolicy {
	return DepositPolicy{kind: DepositTypeFixed}
}

func PercentageDeposit(pct decimal.Decimal) DepositPolicy {
	return DepositPolicy{kind: DepositTypePercentage, value: pct, set: true}
}

// ParseDepositPolicy accepts the raw catalog columns. An empty or "none" type
// means no deposit; value is nil when the column is NULL.
func ParseDepositPolicy(rawType string, rawValue *string) (DepositPolicy, error) {
	kind := DepositType(strings.ToLower(strings.TrimSpace(rawType)))
	switch kind {
	case "", DepositTypeNone:
		return NoDeposit(), nil
	case DepositTypeFixed, DepositTypePercentage:
	default:
		return DepositPolicy{}, errs.InvalidDataf("unknown deposit type %q", rawType)
	}

	if rawValue == nil || strings.TrimSpace(*rawValue) == "" {
		return DepositPolicy{kind: kind}, nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(*rawValue))
	if err != nil {
		return DepositPolicy{}, errs.InvalidDataf("deposit value %q is not a number", *rawValue)
	}
	if value.IsNegative() {
		return DepositPolicy{}, errs.InvalidDataf("deposit value %s cannot be negative", value)
	}
	if kind == DepositTypeFixed && !value.IsInteger() {
		return DepositPolicy{}, errs.InvalidDataf("fixed deposit %s must be a whole amount in minor units", value)
	}
	if kind == DepositTypePercentage && value.GreaterThan(hundred) {
		return DepositPolicy{}, errs.InvalidDataf("deposit percentage %s exceeds 100", value)
	}
	return DepositPolicy{kind: kind, value: value, set: true}, nil
}

func (p DepositPolicy) Type() DepositType {
	if p.kind == "" {
		return DepositTypeNone
	}
	return p.kind
}

func (p DepositPolicy) HasDeposit() bool {
	return p.Type() != DepositTypeNone
}

// Value returns the configured amount or percentage, and whether one is set.
func (p DepositPolicy) Value() (decimal.Decimal, bool) {
	return p.value, p.set
}

// Amount is the deposit payable against price, in minor units.
// A fixed deposit without a configured amount is rejected rather than
// silently falling back to the full price.
func (p DepositPolicy) Amount(price Money) (Money, error) {
	switch p.Type() {
	case DepositTypeFixed:
		if !p.set {
			return Money{}, errs.InvalidDataf("fixed deposit has no configured amount")
		}
		return NewMoney(p.value.IntPart()), nil
	case DepositTypePercentage:
		if !p.set {
			return Money{}, errs.InvalidDataf("percentage deposit has no configured value")
		}
		amount := decimal.NewFromInt(price.Amount()).Mul(p.value).Div(hundred).Round(0)
		return NewMoney(amount.IntPart()), nil
	default:
		return Money{}, errs.InvalidDataf("service has no deposit configured")
	}
}
