//go:build unit

package infra_test

import (
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		kinds []infra.RepositoryErrorKind
		want  infra.RepositoryErrorKind
	}{
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: errs.New("boom"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23P01"}, kinds: []infra.RepositoryErrorKind{infra.KindStale}, want: infra.KindStale},
		{name: "nil cause", err: nil, kinds: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tc.err, tc.kinds...)
			assert.True(t, infra.IsKind(err, tc.want), err.Error())
			assert.Contains(t, err.Error(), "op")
		})
	}

	assert.False(t, infra.IsKind(errs.New("plain"), infra.KindNotFound))
}
