//go:build unit

package lock

import (
	"context"
	"testing"

	"salon-booking/internal/pkg/errs"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContention(t *testing.T) {
	assert.True(t, isContention(redsync.ErrFailed))
	assert.True(t, isContention(&redsync.ErrTaken{Nodes: []int{0}}))
	assert.False(t, isContention(errs.New("dial tcp: connection refused")))
}

func TestNoopLocker(t *testing.T) {
	unlock, err := NoopLocker{}.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NoError(t, unlock(context.Background()))
}
