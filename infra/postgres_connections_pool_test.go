package infra

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestRetryPing(t *testing.T) {
	ctx := context.Background()
	retryPingDelay = time.Millisecond

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryPing(ctx, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		err := RetryPing(ctx, func(context.Context) error {
			calls++
			return errors.New("connection refused")
		})
		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, 5, calls)
	})
}
