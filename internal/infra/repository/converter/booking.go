package converter

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/pgconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) (dbq.InsertBookingParams, error) {
	metadata, err := json.Marshal(b.Metadata())
	if err != nil {
		return dbq.InsertBookingParams{}, errs.Wrap(err, "failed to encode booking metadata")
	}

	c := b.Commercial()
	g := b.Guest()
	return dbq.InsertBookingParams{
		ID:            b.ID(),
		StaffID:       b.StaffID(),
		ServiceID:     b.ServiceID(),
		CustomerID:    pgconv.UUIDPtrToPgtype(b.CustomerID()),
		StartAt:       b.Slot().Start(),
		EndAt:         b.Slot().End(),
		Status:        b.Status().String(),
		HoldExpiresAt: pgconv.TimePtrToPgtype(b.HoldExpiresAt()),
		ServiceName:   c.ServiceName,
		PriceAmount:   c.PriceAmount.Amount(),
		CurrencyCode:  c.CurrencyCode,
		DepositAmount: c.DepositAmount.Amount(),
		PaymentMode:   c.PaymentMode.String(),
		AmountPaid:    c.AmountPaid.Amount(),
		CustomerEmail: pgconv.OptionalStringToPgtype(g.Email),
		CustomerPhone: pgconv.OptionalStringToPgtype(g.Phone),
		CustomerName:  pgconv.OptionalStringToPgtype(g.Name),
		Notes:         b.Notes(),
		Metadata:      metadata,
		CreatedAt:     b.CreatedAt(),
	}, nil
}

func BookingFromRow(row dbq.BookingRow) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	mode, err := booking.ParsePaymentMode(row.PaymentMode)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	slot, err := booking.NewTimeSlot(row.StartAt, row.EndAt)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	metadata := map[string]any{}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
			return nil, errs.Wrapf(err, "booking %s: invalid metadata", row.ID)
		}
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            row.ID,
		DisplayNumber: row.DisplayNumber,
		StaffID:       row.StaffID,
		ServiceID:     row.ServiceID,
		CustomerID:    pgconv.UUIDPtrFromPgtype(row.CustomerID),
		Slot:          slot,
		Status:        status,
		HoldExpiresAt: pgconv.TimePtrFromPgtype(row.HoldExpiresAt),
		Commercial: booking.CommercialSnapshot{
			ServiceName:   row.ServiceName,
			PriceAmount:   booking.NewMoney(row.PriceAmount),
			CurrencyCode:  row.CurrencyCode,
			DepositAmount: booking.NewMoney(row.DepositAmount),
			PaymentMode:   mode,
			AmountPaid:    booking.NewMoney(row.AmountPaid),
		},
		Guest: booking.GuestContact{
			Email: pgconv.StringFromPgtype(row.CustomerEmail),
			Phone: pgconv.StringFromPgtype(row.CustomerPhone),
			Name:  pgconv.StringFromPgtype(row.CustomerName),
		},
		OrderID:       pgconv.UUIDPtrFromPgtype(row.OrderID),
		ConfirmedAt:   pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CompletedAt:   pgconv.TimePtrFromPgtype(row.CompletedAt),
		Notes:         row.Notes,
		InternalNotes: row.InternalNotes,
		Metadata:      metadata,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}), nil
}

// ChangesToParams turns a change set into an UpdateBookingFields call.
// A nil guard writes unconditionally.
func ChangesToParams(id uuid.UUID, changes booking.Changes, guard *booking.Guard, now time.Time) (dbq.UpdateBookingFieldsParams, error) {
	p := dbq.UpdateBookingFieldsParams{ID: id, UpdatedAt: now}
	for field, value := range changes {
		switch field {
		case booking.FieldStatus:
			s, ok := value.(booking.Status)
			if !ok {
				return p, unexpectedValue(field, value)
			}
			p.SetStatus, p.Status = true, pgconv.StringToPgtype(s.String())
		case booking.FieldHoldExpiresAt:
			ts, err := timestampValue(field, value)
			if err != nil {
				return p, err
			}
			p.SetHoldExpiresAt, p.HoldExpiresAt = true, ts
		case booking.FieldConfirmedAt:
			ts, err := timestampValue(field, value)
			if err != nil {
				return p, err
			}
			p.SetConfirmedAt, p.ConfirmedAt = true, ts
		case booking.FieldCancelledAt:
			ts, err := timestampValue(field, value)
			if err != nil {
				return p, err
			}
			p.SetCancelledAt, p.CancelledAt = true, ts
		case booking.FieldCompletedAt:
			ts, err := timestampValue(field, value)
			if err != nil {
				return p, err
			}
			p.SetCompletedAt, p.CompletedAt = true, ts
		case booking.FieldAmountPaid:
			amount, ok := value.(int64)
			if !ok {
				return p, unexpectedValue(field, value)
			}
			p.SetAmountPaid, p.AmountPaid = true, pgconv.Int64ToPgtype(amount)
		case booking.FieldOrderID:
			switch v := value.(type) {
			case nil:
				p.SetOrderID, p.OrderID = true, pgtype.UUID{}
			case uuid.UUID:
				p.SetOrderID, p.OrderID = true, pgconv.UUIDToPgtype(v)
			default:
				return p, unexpectedValue(field, value)
			}
		default:
			return p, errs.Newf("unknown booking field %q", field)
		}
	}

	if guard != nil {
		p.GuardStatus = pgconv.StringToPgtype(guard.Status.String())
		p.GuardNotExpired = pgconv.TimePtrToPgtype(guard.NotExpiredAt)
	}
	return p, nil
}

func timestampValue(field booking.Field, value any) (pgtype.Timestamptz, error) {
	switch v := value.(type) {
	case nil:
		return pgtype.Timestamptz{}, nil
	case time.Time:
		return pgconv.TimeToPgtype(v), nil
	default:
		return pgtype.Timestamptz{}, unexpectedValue(field, value)
	}
}

func unexpectedValue(field booking.Field, value any) error {
	return errs.Newf("unexpected value %T for booking field %s", value, field)
}
