package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/police-department/evidence-manager/utils"
)

func NewPostgresConnectionPool(
	ctx context.Context,
	connectionString string,
	tp trace.TracerProvider,
	maxConnections int,
) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}

	if tp != nil {
		cfg.ConnConfig.Tracer = otelpgx.NewTracer(otelpgx.WithTracerProvider(tp))
	}
	if maxConnections <= 0 {
		maxConnections = DEFAULT_MAX_CONNECTIONS
	}
	cfg.MaxConns = int32(maxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	if err := RetryPing(ctx, pool.Ping); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "unable to reach the database")
	}
	return pool, nil
}

var retryPingDelay = 500 * time.Millisecond

// RetryPing gives a starting database a few seconds to accept connections.
func RetryPing(ctx context.Context, ping func(ctx context.Context) error) error {
	logger := utils.LoggerFromContext(ctx)
	return retry.Do(
		func() error {
			return ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(retryPingDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, "database not reachable yet", "attempt", n+1, "error", err.Error())
		}),
	)
}
