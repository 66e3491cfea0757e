//go:build unit

package order_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking/internal/infra/order"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc, threshold int64) *order.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return order.NewClient(config.OrderConfig{
		BaseURL:          srv.URL,
		Timeout:          2 * time.Second,
		BreakerThreshold: threshold,
	}, metrics.NewNop())
}

func TestClient_CancelOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("posts to the cancel endpoint", func(t *testing.T) {
		var gotPath, gotBody string
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			w.WriteHeader(http.StatusOK)
		}, 5)

		require.NoError(t, c.CancelOrder(context.Background(), orderID, "customer request"))
		assert.Equal(t, "/orders/"+orderID.String()+"/cancel", gotPath)
		assert.JSONEq(t, `{"reason":"customer request","refund":true}`, gotBody)
	})

	t.Run("already cancelled counts as success", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}, 5)
		assert.NoError(t, c.CancelOrder(context.Background(), orderID, ""))
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, 5)
		err := c.CancelOrder(context.Background(), orderID, "")
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("breaker opens after repeated server errors", func(t *testing.T) {
		var calls atomic.Int32
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}, 2)

		require.Error(t, c.CancelOrder(context.Background(), orderID, ""))
		require.Error(t, c.CancelOrder(context.Background(), orderID, ""))
		err := c.CancelOrder(context.Background(), orderID, "")
		require.Error(t, err)
		assert.True(t, errs.Is(err, order.ErrBreakerOpen))
		assert.Equal(t, int32(2), calls.Load())
	})
}
