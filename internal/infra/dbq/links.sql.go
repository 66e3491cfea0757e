package dbq

import (
	"context"

	"github.com/google/uuid"
)

const insertCustomerLink = `-- name: InsertCustomerLink :exec
INSERT INTO booking_customer_links (customer_id, booking_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (q *Queries) InsertCustomerLink(ctx context.Context, db DBTX, customerID, bookingID uuid.UUID) error {
	_, err := db.Exec(ctx, insertCustomerLink, customerID, bookingID)
	return err
}

const deleteCustomerLink = `-- name: DeleteCustomerLink :exec
DELETE FROM booking_customer_links WHERE customer_id = $1 AND booking_id = $2`

func (q *Queries) DeleteCustomerLink(ctx context.Context, db DBTX, customerID, bookingID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteCustomerLink, customerID, bookingID)
	return err
}

const insertOrderLink = `-- name: InsertOrderLink :exec
INSERT INTO booking_order_links (order_id, booking_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (q *Queries) InsertOrderLink(ctx context.Context, db DBTX, orderID, bookingID uuid.UUID) error {
	_, err := db.Exec(ctx, insertOrderLink, orderID, bookingID)
	return err
}
