//go:build unit

// Package memstore is an in-memory stand-in for the Postgres unit of work.
// It enforces the same overlap and conditional-write rules as the schema.
package memstore

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailNext.
const (
	OpCreate         = "create"
	OpFind           = "find"
	OpApply          = "apply"
	OpRestore        = "restore"
	OpDelete         = "delete"
	OpLinkCustomer   = "link_customer"
	OpUnlinkCustomer = "unlink_customer"
	OpLinkOrder      = "link_order"
)

var ErrInjected = errors.New("injected failure")

type linkKey struct{ owner, booking uuid.UUID }

type state struct {
	bookings      map[uuid.UUID]*booking.Booking
	customerLinks map[linkKey]struct{}
	orderLinks    map[linkKey]struct{}
	nextNumber    int64
}

func (s state) clone() state {
	return state{
		bookings:      maps.Clone(s.bookings),
		customerLinks: maps.Clone(s.customerLinks),
		orderLinks:    maps.Clone(s.orderLinks),
		nextNumber:    s.nextNumber,
	}
}

type failure struct {
	skip int
	err  error
}

type Store struct {
	mu    sync.Mutex
	txMu  sync.Mutex
	state state
	fail  map[string]failure
	calls map[string]int
}

var (
	_ shared.UnitOfWork        = (*Store)(nil)
	_ shared.BookingRepository = (*bookingRepo)(nil)
	_ shared.LinkRepository    = (*linkRepo)(nil)
)

func New() *Store {
	return &Store{
		state: state{
			bookings:      map[uuid.UUID]*booking.Booking{},
			customerLinks: map[linkKey]struct{}{},
			orderLinks:    map[linkKey]struct{}{},
		},
		fail:  map[string]failure{},
		calls: map[string]int{},
	}
}

// FailNext makes the next call of op return err (a DB_FAILURE wrapping
// ErrInjected when nil).
func (s *Store) FailNext(op string, err error) {
	s.FailNth(op, 1, err)
}

// FailNth lets n-1 calls of op through and fails the nth.
func (s *Store) FailNth(op string, n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = infra.WrapRepoErr(op, ErrInjected)
	}
	s.fail[op] = failure{skip: n - 1, err: err}
}

// Calls reports how many times op ran, failed calls included.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Put stores b as is, bypassing the overlap check.
func (s *Store) Put(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.bookings[b.ID()] = b
}

func (s *Store) Get(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.state.bookings[id]
	return b, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.bookings)
}

func (s *Store) HasCustomerLink(customerID, bookingID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.customerLinks[linkKey{customerID, bookingID}]
	return ok
}

func (s *Store) HasOrderLink(orderID, bookingID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.orderLinks[linkKey{orderID, bookingID}]
	return ok
}

// Within serialises transactions and restores the prior state when fn fails.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	saved := s.state.clone()
	s.mu.Unlock()

	if err := fn(ctx, s); err != nil {
		s.mu.Lock()
		s.state = saved
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Bookings() shared.BookingRepository { return &bookingRepo{s: s} }
func (s *Store) Links() shared.LinkRepository       { return &linkRepo{s: s} }

// enter locks the store and consumes any injected failure for op.
func (s *Store) enter(op string) error {
	s.mu.Lock()
	s.calls[op]++
	f, ok := s.fail[op]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		s.fail[op] = f
		return nil
	}
	delete(s.fail, op)
	return f.err
}

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	s := r.s
	err := s.enter(OpCreate)
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if _, ok := s.state.bookings[b.ID()]; ok {
		return nil, infra.WrapRepoErr("insert booking", nil, infra.KindDuplicateKey)
	}
	for _, other := range s.state.bookings {
		if other.StaffID() == b.StaffID() && other.Status().Blocks() && other.Slot().Overlaps(b.Slot()) {
			return nil, infra.WrapRepoErr("insert booking", nil, infra.KindConflict)
		}
	}
	s.state.nextNumber++
	created := b.WithIdentity(b.ID(), s.state.nextNumber, b.CreatedAt())
	s.state.bookings[created.ID()] = created
	return created, nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s := r.s
	err := s.enter(OpFind)
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	b, ok := s.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("get booking", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r *bookingRepo) ApplyTransition(_ context.Context, tr booking.Transition, now time.Time) error {
	s := r.s
	err := s.enter(OpApply)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	b, ok := s.state.bookings[tr.BookingID]
	if !ok {
		return infra.WrapRepoErr("update booking", nil, infra.KindNotFound)
	}
	if b.Status() != tr.Guard.Status {
		return infra.WrapRepoErr("update booking", nil, infra.KindStale)
	}
	if at := tr.Guard.NotExpiredAt; at != nil && b.HoldExpiresAt() != nil && b.HoldExpiresAt().Before(*at) {
		return infra.WrapRepoErr("update booking", nil, infra.KindStale)
	}
	s.state.bookings[b.ID()] = b.Apply(tr.Changes, now)
	return nil
}

func (r *bookingRepo) RestoreFields(_ context.Context, id uuid.UUID, before booking.Changes, now time.Time) error {
	s := r.s
	err := s.enter(OpRestore)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	b, ok := s.state.bookings[id]
	if !ok {
		return infra.WrapRepoErr("restore booking", nil, infra.KindNotFound)
	}
	s.state.bookings[id] = b.Apply(before, now)
	return nil
}

func (r *bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.s
	err := s.enter(OpDelete)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	delete(s.state.bookings, id)
	for k := range s.state.customerLinks {
		if k.booking == id {
			delete(s.state.customerLinks, k)
		}
	}
	return nil
}

// ListBlockingSlots serves the availability checker.
func (s *Store) ListBlockingSlots(_ context.Context, staffID uuid.UUID, window booking.TimeSlot) ([]booking.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var slots []booking.TimeSlot
	for _, b := range s.state.bookings {
		if b.StaffID() == staffID && b.Status().Blocks() && b.Slot().Overlaps(window) {
			slots = append(slots, b.Slot())
		}
	}
	return slots, nil
}

// ListExpiredHolds and DeleteExpiredHolds serve the reaper.
func (s *Store) ListExpiredHolds(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uuid.UUID
	for id, b := range s.state.bookings {
		if b.Status() == booking.StatusHeld && b.HoldExpired(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *Store) DeleteExpiredHolds(_ context.Context, ids []uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted []uuid.UUID
	for _, id := range ids {
		b, ok := s.state.bookings[id]
		if ok && b.Status() == booking.StatusHeld && b.HoldExpired(now) {
			delete(s.state.bookings, id)
			deleted = append(deleted, id)
		}
	}
	return deleted, nil
}

type linkRepo struct{ s *Store }

func (r *linkRepo) LinkCustomer(_ context.Context, customerID, bookingID uuid.UUID) error {
	s := r.s
	err := s.enter(OpLinkCustomer)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.state.customerLinks[linkKey{customerID, bookingID}] = struct{}{}
	return nil
}

func (r *linkRepo) UnlinkCustomer(_ context.Context, customerID, bookingID uuid.UUID) error {
	s := r.s
	err := s.enter(OpUnlinkCustomer)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	delete(s.state.customerLinks, linkKey{customerID, bookingID})
	return nil
}

func (r *linkRepo) LinkOrder(_ context.Context, orderID, bookingID uuid.UUID) error {
	s := r.s
	err := s.enter(OpLinkOrder)
	defer s.mu.Unlock()
	if err != nil {
		return err
	}
	s.state.orderLinks[linkKey{orderID, bookingID}] = struct{}{}
	return nil
}
