package components

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/cache"
	"hotel-reservation/internal/infra/gateway"
	"hotel-reservation/internal/infra/metrics"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			cache.NewRedisLocker,
			fx.As(new(shared.Locker)),
		),
		fx.Annotate(
			func(cfg config.Config) *gateway.PayHere {
				return gateway.NewPayHere(cfg.PayHere)
			},
			fx.As(new(shared.PaymentGateway)),
		),
		NewMetrics,
		NewMetricsPort,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

// NewMetrics returns nil when metrics are disabled; the router then skips
// the middleware and the /metrics endpoint.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		slog.Info("metrics disabled")
		return nil
	}
	return metrics.New(cfg.Metrics.Namespace)
}

func NewMetricsPort(m *metrics.Metrics) shared.Metrics {
	if m == nil {
		return shared.NopMetrics{}
	}
	return m
}
