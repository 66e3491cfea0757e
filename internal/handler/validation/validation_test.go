//go:build unit

package validation_test

import (
	"testing"

	"salon-booking/internal/handler/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Mode   string `validate:"required,payment_mode"`
	Status string `validate:"omitempty,booking_status"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.RegisterOn(v))

	assert.NoError(t, v.Struct(sample{Mode: "deposit"}))
	assert.NoError(t, v.Struct(sample{Mode: "pay_in_store", Status: "no_show"}))
	assert.Error(t, v.Struct(sample{Mode: "bitcoin"}))
	assert.Error(t, v.Struct(sample{Mode: "full", Status: "pending"}))
}
