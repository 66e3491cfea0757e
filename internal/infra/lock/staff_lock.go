// Package lock serialises hold attempts per staff member across processes.
// It only reduces contention; the bookings exclusion constraint stays the
// source of truth for overlaps.
package lock

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "salon-booking:staff-lock:"

type RedisStaffLocker struct {
	rs    *redsync.Redsync
	ttl   time.Duration
	tries int
}

func NewRedisStaffLocker(client redis.UniversalClient, cfg config.LockConfig) *RedisStaffLocker {
	return &RedisStaffLocker{
		rs:    redsync.New(goredis.NewPool(client)),
		ttl:   cfg.TTL,
		tries: max(cfg.Tries, 1),
	}
}

func (l *RedisStaffLocker) Lock(ctx context.Context, staffID uuid.UUID) (func(context.Context) error, error) {
	mutex := l.rs.NewMutex(keyPrefix+staffID.String(),
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(l.tries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		if isContention(err) {
			return nil, errs.NotAllowedf("staff %s is busy with another hold, try again", staffID)
		}
		return nil, errs.Wrapf(err, "failed to lock staff %s", staffID)
	}

	return func(ctx context.Context) error {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			return errs.Wrapf(err, "failed to unlock staff %s", staffID)
		}
		return nil
	}, nil
}

func isContention(err error) bool {
	var taken *redsync.ErrTaken
	return errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken)
}

// NoopLocker is used when locking is disabled.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, uuid.UUID) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
