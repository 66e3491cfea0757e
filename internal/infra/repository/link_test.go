//go:build unit

package repository_test

import (
	"context"
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/dbq"
	"salon-booking/internal/infra/repository"
	repositorymock "salon-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLinkRepository(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockLinkWriteQueries, dbq.DBTX)
		call       func(*repository.LinkRepository) error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: customer linked",
			setupMock: func(mock *repositorymock.MockLinkWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().InsertCustomerLink(ctx, tx, a, b).Return(nil)
			},
			call: func(r *repository.LinkRepository) error { return r.LinkCustomer(ctx, a, b) },
		},
		{
			name: "success: customer unlinked",
			setupMock: func(mock *repositorymock.MockLinkWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().DeleteCustomerLink(ctx, tx, a, b).Return(nil)
			},
			call: func(r *repository.LinkRepository) error { return r.UnlinkCustomer(ctx, a, b) },
		},
		{
			name: "success: order linked",
			setupMock: func(mock *repositorymock.MockLinkWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().InsertOrderLink(ctx, tx, a, b).Return(nil)
			},
			call: func(r *repository.LinkRepository) error { return r.LinkOrder(ctx, a, b) },
		},
		{
			name: "error: booking removed before the link",
			setupMock: func(mock *repositorymock.MockLinkWriteQueries, tx dbq.DBTX) {
				fk := &pgconn.PgError{Code: "23503"}
				mock.EXPECT().InsertCustomerLink(ctx, tx, a, b).Return(fk)
			},
			call:       func(r *repository.LinkRepository) error { return r.LinkCustomer(ctx, a, b) },
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockLinkWriteQueries, tx dbq.DBTX) {
				mock.EXPECT().InsertOrderLink(ctx, tx, a, b).Return(errDBConnection)
			},
			call:       func(r *repository.LinkRepository) error { return r.LinkOrder(ctx, a, b) },
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockLinkWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			err := tc.call(repository.NewLinkRepository(mockQueries, mockDB))
			if tc.expectKind != "" {
				assertRepoErr(t, err, tc.expectKind)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
