//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/settings"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	readstoremock "salon-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	baseTime            = time.Date(2030, 6, 3, 8, 0, 0, 0, time.UTC)
)

// =============================================================================
// Service catalog
// =============================================================================

func TestServiceReadStore_FindService(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	text := func(s string) pgtype.Text { return pgtype.Text{String: s, Valid: true} }

	testCases := []struct {
		name          string
		row           dbq.ServiceRow
		queryErr      error
		expectKind    infra.RepositoryErrorKind
		expectErrKind errs.Kind
		check         func(t *testing.T, svc booking.ServiceSpec)
	}{
		{
			name: "success: no deposit, all modes",
			row:  dbq.ServiceRow{ID: id, Name: "Haircut", PriceAmount: 10000, CurrencyCode: "EUR", DepositType: "none"},
			check: func(t *testing.T, svc booking.ServiceSpec) {
				assert.Equal(t, booking.DepositTypeNone, svc.Deposit.Type())
				assert.False(t, svc.Deposit.HasDeposit())
				assert.Equal(t, int64(10000), svc.Price.Amount())
			},
		},
		{
			name: "success: percentage deposit and online-only modes",
			row: dbq.ServiceRow{
				ID: id, Name: "Colour", PriceAmount: 12000, CurrencyCode: "EUR",
				DepositType: "percentage", DepositValue: text("25.5"), PaymentModesAllowed: []string{"online"},
			},
			check: func(t *testing.T, svc booking.ServiceSpec) {
				value, ok := svc.Deposit.Value()
				require.True(t, ok)
				assert.True(t, decimal.RequireFromString("25.5").Equal(value))
				assert.Equal(t, []booking.PaymentCategory{booking.CategoryOnline}, svc.PaymentModesAllowed)
			},
		},
		{
			name: "success: fixed deposit with NULL value is kept unset",
			row:  dbq.ServiceRow{ID: id, Name: "Perm", PriceAmount: 9000, CurrencyCode: "EUR", DepositType: "fixed"},
			check: func(t *testing.T, svc booking.ServiceSpec) {
				_, ok := svc.Deposit.Value()
				assert.False(t, ok)
			},
		},
		{
			name:          "error: unknown deposit type",
			row:           dbq.ServiceRow{ID: id, DepositType: "voucher"},
			expectErrKind: errs.KindInvalidData,
		},
		{
			name:       "error: service not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			queryErr:   errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockServiceReadQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetService(ctx, mockDB, id).Return(tc.row, tc.queryErr)

			svc, err := readstore.NewServiceReadStore(mockQueries, mockDB).FindService(ctx, id)

			switch {
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			case tc.expectErrKind != "":
				require.Error(t, err)
				assert.Equal(t, tc.expectErrKind, errs.KindOf(err))
			default:
				require.NoError(t, err)
				tc.check(t, svc)
			}
		})
	}
}

// =============================================================================
// Booking settings
// =============================================================================

func TestSettingsReadStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSettingsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingSettings(ctx, mockDB).Return(dbq.BookingSettingsRow{
			CancellationWindowHours:    24,
			DefaultHoldDurationMinutes: 15,
			AllowGuestBookings:         false,
			Timezone:                   "Europe/Berlin",
		}, nil)

		s, err := readstore.NewSettingsReadStore(mockQueries, mockDB).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 24, s.CancellationWindowHours)
		assert.Equal(t, 15*time.Minute, s.HoldDuration())
		assert.False(t, s.AllowGuestBookings)
	})

	t.Run("success: missing row falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSettingsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingSettings(ctx, mockDB).Return(dbq.BookingSettingsRow{}, pgx.ErrNoRows)

		s, err := readstore.NewSettingsReadStore(mockQueries, mockDB).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, settings.Default(), s)
	})

	t.Run("error: stored values out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSettingsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingSettings(ctx, mockDB).Return(dbq.BookingSettingsRow{
			CancellationWindowHours: 2, DefaultHoldDurationMinutes: 10, Timezone: "Mars/Olympus",
		}, nil)

		_, err := readstore.NewSettingsReadStore(mockQueries, mockDB).Load(ctx)
		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidData, errs.KindOf(err))
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSettingsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetBookingSettings(ctx, mockDB).Return(dbq.BookingSettingsRow{}, errDBConnectionLost)

		_, err := readstore.NewSettingsReadStore(mockQueries, mockDB).Load(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Staff rules
// =============================================================================

func TestStaffRuleReadStore_StaffRules(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	window, err := booking.NewTimeSlot(baseTime, baseTime.Add(time.Hour))
	require.NoError(t, err)

	t.Run("success: hours and time off are combined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockStaffRuleQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListWorkingHours(ctx, mockDB, staffID).Return([]dbq.WorkingHoursRow{
			{StaffID: staffID, Weekday: 1, OpensAtMinute: 540, ClosesAtMinute: 1020},
		}, nil)
		mockQueries.EXPECT().ListTimeOff(ctx, mockDB, staffID, window.Start(), window.End()).Return([]dbq.TimeOffRow{
			{StaffID: staffID, StartsAt: baseTime, EndsAt: baseTime.Add(2 * time.Hour), Reason: "dentist"},
		}, nil)

		rules, err := readstore.NewStaffRuleReadStore(mockQueries, mockDB).StaffRules(ctx, staffID, window)
		require.NoError(t, err)
		require.Len(t, rules.Hours, 1)
		assert.Equal(t, time.Monday, rules.Hours[0].Weekday)
		require.Len(t, rules.TimeOff, 1)
		assert.Equal(t, "dentist", rules.TimeOff[0].Reason)
	})

	t.Run("error: working hours query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockStaffRuleQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListWorkingHours(ctx, mockDB, staffID).Return(nil, errDBConnectionLost)

		_, err := readstore.NewStaffRuleReadStore(mockQueries, mockDB).StaffRules(ctx, staffID, window)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Booking views
// =============================================================================

func viewRow(id uuid.UUID, start time.Time) dbq.BookingRow {
	return dbq.BookingRow{
		ID:            id,
		DisplayNumber: 3,
		StaffID:       uuid.New(),
		ServiceID:     uuid.New(),
		StartAt:       start,
		EndAt:         start.Add(30 * time.Minute),
		Status:        "confirmed",
		ServiceName:   "Haircut",
		PriceAmount:   10000,
		CurrencyCode:  "EUR",
		PaymentMode:   "full",
		AmountPaid:    10000,
		CustomerEmail: pgtype.Text{String: "guest@example.com", Valid: true},
		OrderID:       pgtype.UUID{Bytes: uuid.New(), Valid: true},
		ConfirmedAt:   pgtype.Timestamptz{Time: baseTime, Valid: true},
		Metadata:      []byte(`{}`),
		CreatedAt:     baseTime,
		UpdatedAt:     baseTime,
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries, dbq.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, tx dbq.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(viewRow(id, baseTime), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, tx dbq.DBTX) {
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(dbq.BookingRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: corrupt metadata",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, tx dbq.DBTX) {
				row := viewRow(id, baseTime)
				row.Metadata = []byte(`{not json`)
				mock.EXPECT().GetBookingByID(ctx, tx, id).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			view, err := readstore.NewBookingReadStore(mockQueries, mockDB).FindByID(ctx, id)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			assert.Equal(t, "confirmed", view.Status)
			assert.Nil(t, view.CustomerID)
			require.NotNil(t, view.CustomerEmail)
			assert.Equal(t, "guest@example.com", *view.CustomerEmail)
			assert.NotNil(t, view.OrderID)
		})
	}
}

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	status := booking.StatusConfirmed
	afterID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListBookings(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ dbq.DBTX, arg dbq.ListBookingsParams) ([]dbq.BookingRow, error) {
			assert.Equal(t, pgtype.UUID{Bytes: customerID, Valid: true}, arg.CustomerID)
			assert.False(t, arg.StaffID.Valid)
			assert.Equal(t, "confirmed", arg.Status.String)
			assert.True(t, arg.AfterStart.Time.Equal(baseTime))
			assert.Equal(t, pgtype.UUID{Bytes: afterID, Valid: true}, arg.AfterID)
			assert.Equal(t, int32(21), arg.Limit)
			return []dbq.BookingRow{viewRow(uuid.New(), baseTime.Add(time.Hour)), viewRow(uuid.New(), baseTime.Add(2*time.Hour))}, nil
		})

	views, err := readstore.NewBookingReadStore(mockQueries, mockDB).List(ctx,
		queries.BookingFilter{CustomerID: &customerID, Status: &status},
		&queries.Keyset{StartAt: baseTime, ID: afterID}, 21)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestBookingReadStore_List_DBError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListBookings(ctx, mockDB, gomock.Any()).Return(nil, errDBConnectionLost)

	_, err := readstore.NewBookingReadStore(mockQueries, mockDB).List(ctx, queries.BookingFilter{}, nil, 20)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
