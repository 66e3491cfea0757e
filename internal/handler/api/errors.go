package api

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	errForeignCustomer = errs.New("cannot hold a slot on behalf of another customer")
	errUnauthenticated = errs.New("authentication required")
)

type closeFunc func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
