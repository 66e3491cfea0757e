//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"salon-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: errs.KindUnknown},
		{name: "not found", err: errs.NotFoundf("booking %s not found", "b-1"), want: errs.KindNotFound},
		{name: "not allowed", err: errs.NotAllowedf("booking is %s", "cancelled"), want: errs.KindNotAllowed},
		{name: "invalid data", err: errs.InvalidDataf("no deposit"), want: errs.KindInvalidData},
		{name: "wrapped keeps kind", err: errs.Wrap(errs.NotAllowedf("expired"), "confirm"), want: errs.KindNotAllowed},
		{name: "plain error", err: errors.New("boom"), want: errs.KindUnknown},
		{name: "marked plain error", err: errs.AsKind(errors.New("gone"), errs.KindNotFound), want: errs.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestKindErrorsKeepMessage(t *testing.T) {
	err := errs.NotAllowedf("booking %s is %s", "b-1", "cancelled")

	assert.Equal(t, "booking b-1 is cancelled", err.Error())
	assert.True(t, errs.Is(err, errs.ErrNotAllowed))
	assert.False(t, errs.Is(err, errs.ErrNotFound))
}

func TestWithSecondary(t *testing.T) {
	primary := errs.NotAllowedf("slot taken")
	combined := errs.WithSecondary(primary, errors.New("rollback failed"))

	assert.Equal(t, errs.KindNotAllowed, errs.KindOf(combined))
	assert.Equal(t, "slot taken", combined.Error())
	assert.Same(t, primary, errs.WithSecondary(primary, nil))
}
