//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/infra/repository"
	"salon-booking/tests/common/builder"
	repositorymock "salon-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

func assertRepoErr(t *testing.T, err error, kind infra.RepositoryErrorKind) {
	t.Helper()
	require.Error(t, err)
	if kind != "" {
		assert.True(t, infra.IsKind(err, kind), "expected kind [%v] but got (%v)", kind, err)
	}
}

func bookingRow(id uuid.UUID, status string) dbq.BookingRow {
	start := builder.BaseTime.Add(26 * time.Hour)
	row := dbq.BookingRow{
		ID:            id,
		DisplayNumber: 7,
		StaffID:       uuid.New(),
		ServiceID:     uuid.New(),
		CustomerID:    pgtype.UUID{Bytes: uuid.New(), Valid: true},
		StartAt:       start,
		EndAt:         start.Add(30 * time.Minute),
		Status:        status,
		ServiceName:   "Haircut",
		PriceAmount:   10000,
		CurrencyCode:  "EUR",
		PaymentMode:   "full",
		Notes:         "first visit",
		Metadata:      []byte(`{"channel":"web"}`),
		CreatedAt:     builder.BaseTime,
		UpdatedAt:     builder.BaseTime,
	}
	if status == "held" {
		row.HoldExpiresAt = pgtype.Timestamptz{Time: builder.BaseTime.Add(10 * time.Minute), Valid: true}
	}
	return row
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, dbq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created with identity from the database",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx dbq.DBTX) {
				mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ dbq.DBTX, arg dbq.InsertBookingParams) (dbq.InsertBookingRow, error) {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, "held", arg.Status)
						assert.True(t, arg.HoldExpiresAt.Valid)
						assert.True(t, arg.CustomerID.Valid)
						return dbq.InsertBookingRow{DisplayNumber: 42, CreatedAt: builder.BaseTime}, nil
					})
			},
		},
		{
			name: "error: overlapping slot violates the exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx dbq.DBTX) {
				conflict := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint \"bookings_no_overlap\""}
				mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).Return(dbq.InsertBookingRow{}, conflict)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown service violates the foreign key",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx dbq.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update on table \"bookings\" violates foreign key constraint"}
				mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).Return(dbq.InsertBookingRow{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx dbq.DBTX) {
				mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).Return(dbq.InsertBookingRow{}, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			draft, err := builder.NewBookingBuilder().BuildHold()
			require.NoError(t, err)

			tc.setupMock(mockQueries, draft, mockDB)

			created, actualError := repo.Create(ctx, draft)

			if tc.expectedError {
				assertRepoErr(t, actualError, tc.expectKind)
				assert.Nil(t, created)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, int64(42), created.DisplayNumber())
				assert.Equal(t, draft.ID(), created.ID())
			}
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, dbq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(bookingRow(id, "held"), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(dbq.BookingRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: corrupt status in row",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(bookingRow(id, "pending"), nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(dbq.BookingRow{}, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			b, actualError := repo.FindByID(ctx, id)

			if tc.expectedError {
				assertRepoErr(t, actualError, tc.expectKind)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, id, b.ID())
			assert.Equal(t, booking.StatusHeld, b.Status())
			assert.Equal(t, "web", b.Metadata()["channel"])
		})
	}
}

// =============================================================================
// ApplyTransition Tests
// =============================================================================

func TestBookingRepository_ApplyTransition(t *testing.T) {
	ctx := context.Background()
	now := builder.BaseTime.Add(time.Minute)

	held := builder.NewBookingBuilder().BuildWithStatus(booking.StatusHeld)
	tr, err := held.Confirm(now, booking.NewMoney(10000), uuid.New())
	require.NoError(t, err)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, dbq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: guarded update hits the row",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingFields(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ dbq.DBTX, arg dbq.UpdateBookingFieldsParams) (int64, error) {
						assert.Equal(t, held.ID(), arg.ID)
						assert.True(t, arg.SetStatus)
						assert.Equal(t, "confirmed", arg.Status.String)
						assert.True(t, arg.SetHoldExpiresAt)
						assert.False(t, arg.HoldExpiresAt.Valid, "hold expiry is cleared")
						assert.Equal(t, "held", arg.GuardStatus.String)
						assert.True(t, arg.GuardNotExpired.Valid)
						assert.False(t, arg.SetCancelledAt)
						return 1, nil
					})
			},
		},
		{
			name: "error: row changed since it was read",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingFields(ctx, tx, gomock.Any()).Return(int64(0), nil)
				mock.EXPECT().BookingExists(ctx, tx, held.ID()).Return(true, nil)
			},
			expectedError: true,
			expectKind:    infra.KindStale,
		},
		{
			name: "error: row is gone",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingFields(ctx, tx, gomock.Any()).Return(int64(0), nil)
				mock.EXPECT().BookingExists(ctx, tx, held.ID()).Return(false, nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingFields(ctx, tx, gomock.Any()).Return(int64(0), errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			actualError := repo.ApplyTransition(ctx, tr, now)

			if tc.expectedError {
				assertRepoErr(t, actualError, tc.expectKind)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestBookingRepository_RestoreFields(t *testing.T) {
	ctx := context.Background()
	now := builder.BaseTime
	held := builder.NewBookingBuilder().BuildWithStatus(booking.StatusHeld)
	before := held.Snapshot([]booking.Field{booking.FieldStatus, booking.FieldHoldExpiresAt, booking.FieldCancelledAt})

	t.Run("success: snapshot written back without a guard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateBookingFields(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ dbq.DBTX, arg dbq.UpdateBookingFieldsParams) (int64, error) {
				assert.Equal(t, "held", arg.Status.String)
				assert.True(t, arg.HoldExpiresAt.Valid)
				assert.True(t, arg.SetCancelledAt)
				assert.False(t, arg.CancelledAt.Valid)
				assert.False(t, arg.GuardStatus.Valid)
				return 1, nil
			})

		err := repository.NewBookingRepository(mockQueries, mockDB).RestoreFields(ctx, held.ID(), before, now)
		assert.NoError(t, err)
	})

	t.Run("error: row is gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpdateBookingFields(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repository.NewBookingRepository(mockQueries, mockDB).RestoreFields(ctx, held.ID(), before, now)
		assertRepoErr(t, err, infra.KindNotFound)
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: missing row is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteBooking(ctx, mockDB, id).Return(int64(0), nil)

		assert.NoError(t, repository.NewBookingRepository(mockQueries, mockDB).Delete(ctx, id))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteBooking(ctx, mockDB, id).Return(int64(0), errDBConnection)

		assertRepoErr(t, repository.NewBookingRepository(mockQueries, mockDB).Delete(ctx, id), infra.KindDBFailure)
	})
}

// =============================================================================
// Availability and reaper queries
// =============================================================================

func TestBookingRepository_ListBlockingSlots(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	window, err := booking.NewTimeSlot(builder.BaseTime, builder.BaseTime.Add(time.Hour))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListBlockingSlots(ctx, mockDB, staffID, window.Start(), window.End()).Return([]dbq.SlotRow{
		{StartAt: builder.BaseTime, EndAt: builder.BaseTime.Add(30 * time.Minute)},
	}, nil)

	slots, err := repository.NewBookingRepository(mockQueries, mockDB).ListBlockingSlots(ctx, staffID, window)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, 30*time.Minute, slots[0].Duration())
}

func TestBookingRepository_DeleteExpiredHolds(t *testing.T) {
	ctx := context.Background()
	now := builder.BaseTime

	t.Run("empty batch skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)

		deleted, err := repository.NewBookingRepository(mockQueries, &mockDBTX{}).DeleteExpiredHolds(ctx, nil, now)
		require.NoError(t, err)
		assert.Empty(t, deleted)
	})

	t.Run("returns the ids the database deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		mockQueries.EXPECT().DeleteExpiredHolds(ctx, mockDB, ids, now).Return(ids[1:], nil)

		deleted, err := repository.NewBookingRepository(mockQueries, mockDB).DeleteExpiredHolds(ctx, ids, now)
		require.NoError(t, err)
		assert.Equal(t, ids[1:], deleted)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListExpiredHoldIDs(ctx, mockDB, now).Return(nil, errDBConnection)

		_, err := repository.NewBookingRepository(mockQueries, mockDB).ListExpiredHolds(ctx, now)
		assertRepoErr(t, err, infra.KindDBFailure)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
