package messaging

import (
	"github.com/google/uuid"
)

// PaymentCompleted is published by the order service once a payment for a
// booking settles.
type PaymentCompleted struct {
	OrderID    uuid.UUID `json:"order_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	AmountPaid int64     `json:"amount_paid"`
	Currency   string    `json:"currency"`
}

// OrderPlaced names bookings through line-item metadata. Items without a
// booking_id belong to other products and are ignored.
type OrderPlaced struct {
	OrderID   uuid.UUID       `json:"order_id"`
	Currency  string          `json:"currency"`
	LineItems []OrderLineItem `json:"line_items"`
}

type OrderLineItem struct {
	UnitPrice int64            `json:"unit_price"`
	Quantity  int64            `json:"quantity"`
	Metadata  LineItemMetadata `json:"metadata"`
}

type LineItemMetadata struct {
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}

func (i OrderLineItem) Total() int64 {
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	return i.UnitPrice * qty
}
