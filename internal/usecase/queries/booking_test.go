//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewRepo struct {
	views      map[uuid.UUID]*queries.BookingView
	lastFilter queries.BookingFilter
	lastAfter  *queries.Keyset
	lastLimit  int
	list       []*queries.BookingView
}

func (f *fakeViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *v
	return &cp, nil
}

func (f *fakeViewRepo) List(_ context.Context, filter queries.BookingFilter, after *queries.Keyset, limit int) ([]*queries.BookingView, error) {
	f.lastFilter, f.lastAfter, f.lastLimit = filter, after, limit
	out := make([]*queries.BookingView, 0, len(f.list))
	for _, v := range f.list {
		cp := *v
		out = append(out, &cp)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func view(customerID *uuid.UUID, startAt time.Time) *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		CustomerID:    customerID,
		StartAt:       startAt,
		EndAt:         startAt.Add(30 * time.Minute),
		Status:        "held",
		InternalNotes: "prefers quiet",
	}
}

func TestBookingQueries_GetByID(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	start := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)
	owned := view(&owner, start)
	guest := view(nil, start)
	repo := &fakeViewRepo{views: map[uuid.UUID]*queries.BookingView{owned.ID: owned, guest.ID: guest}}
	q := queries.NewBookingQueries(repo)
	ctx := context.Background()

	t.Run("owner sees booking without internal notes", func(t *testing.T) {
		got, err := q.GetByID(ctx, queries.Viewer{UserID: &owner}, owned.ID)
		require.NoError(t, err)
		assert.Equal(t, owned.ID, got.ID)
		assert.Empty(t, got.InternalNotes)
	})

	t.Run("admin sees internal notes", func(t *testing.T) {
		got, err := q.GetByID(ctx, queries.Viewer{IsAdmin: true}, owned.ID)
		require.NoError(t, err)
		assert.Equal(t, "prefers quiet", got.InternalNotes)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, queries.Viewer{UserID: &stranger}, owned.ID)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("anonymous reads guest booking", func(t *testing.T) {
		_, err := q.GetByID(ctx, queries.Viewer{}, guest.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(ctx, queries.Viewer{IsAdmin: true}, uuid.New())
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestBookingQueries_List(t *testing.T) {
	customer := uuid.New()
	start := time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("customer filter is forced for non admins", func(t *testing.T) {
		repo := &fakeViewRepo{}
		other := uuid.New()
		_, _, err := queries.NewBookingQueries(repo).List(ctx, queries.Viewer{UserID: &customer},
			queries.BookingFilter{CustomerID: &other}, nil, 10)
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.CustomerID)
		assert.Equal(t, customer, *repo.lastFilter.CustomerID)
		assert.Equal(t, 11, repo.lastLimit)
	})

	t.Run("anonymous cannot list", func(t *testing.T) {
		_, _, err := queries.NewBookingQueries(&fakeViewRepo{}).List(ctx, queries.Viewer{}, queries.BookingFilter{}, nil, 10)
		assert.Equal(t, errs.KindNotAllowed, errs.KindOf(err))
	})

	t.Run("inverted range", func(t *testing.T) {
		from, to := start, start.Add(-time.Hour)
		_, _, err := queries.NewBookingQueries(&fakeViewRepo{}).List(ctx, queries.Viewer{IsAdmin: true},
			queries.BookingFilter{From: &from, To: &to}, nil, 10)
		assert.Equal(t, errs.KindInvalidData, errs.KindOf(err))
	})

	t.Run("next cursor round trips", func(t *testing.T) {
		repo := &fakeViewRepo{list: []*queries.BookingView{
			view(&customer, start), view(&customer, start.Add(time.Hour)), view(&customer, start.Add(2*time.Hour)),
		}}
		q := queries.NewBookingQueries(repo)

		page, next, err := q.List(ctx, queries.Viewer{IsAdmin: true}, queries.BookingFilter{}, nil, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.NotNil(t, next)

		_, _, err = q.List(ctx, queries.Viewer{IsAdmin: true}, queries.BookingFilter{}, next, 2)
		require.NoError(t, err)
		require.NotNil(t, repo.lastAfter)
		assert.True(t, page[1].StartAt.Equal(repo.lastAfter.StartAt))
		assert.Equal(t, page[1].ID, repo.lastAfter.ID)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		repo := &fakeViewRepo{list: []*queries.BookingView{view(&customer, start)}}
		page, next, err := queries.NewBookingQueries(repo).List(ctx, queries.Viewer{IsAdmin: true}, queries.BookingFilter{}, nil, 5)
		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		_, _, err := queries.NewBookingQueries(&fakeViewRepo{}).List(ctx, queries.Viewer{IsAdmin: true},
			queries.BookingFilter{}, &queries.Cursor{After: "!!"}, 5)
		assert.Equal(t, errs.KindInvalidData, errs.KindOf(err))
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
	assert.Equal(t, 7, queries.ValidateLimit(7))
}
