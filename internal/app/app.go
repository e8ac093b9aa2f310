// Package app wires the gateway client, session manager, and domain
// services together and dispatches the configured command.
package app

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/xenking/snapbuy-client/internal/client"
	"github.com/xenking/snapbuy-client/internal/domain/delivery"
	"github.com/xenking/snapbuy-client/internal/domain/order"
	"github.com/xenking/snapbuy-client/internal/session"
	"github.com/xenking/snapbuy-client/pkg/transport"
)

// Run creates all dependencies and dispatches cfg.Command. It is the single
// wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Metrics, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("base_url", cfg.BaseURL),
		zap.String("command", cfg.Command),
	)

	rt := transport.Chain(http.DefaultTransport,
		transport.Throttle(transport.ThrottleConfig{
			Max:    cfg.Throttle.Max,
			Window: cfg.Throttle.Window,
		}),
		transport.RequestID(),
		transport.LogRequests(),
	)

	api, err := client.New(client.Config{
		BaseURL:  cfg.BaseURL,
		APIKey:   cfg.APIKey,
		CacheTTL: cfg.CacheTTL,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: otelhttp.NewTransport(rt,
				otelhttp.WithTracerProvider(m.TracerProvider()),
				otelhttp.WithMeterProvider(m.MeterProvider()),
			),
		},
	})
	if err != nil {
		return errors.Wrap(err, "create client")
	}

	sessions := session.NewManager(api, session.NewFileStore(cfg.TokenFile))
	orders := order.NewService(api)
	deliveries := delivery.NewService(api)

	env := &commandEnv{
		cfg:        cfg,
		api:        api,
		sessions:   sessions,
		orders:     orders,
		deliveries: deliveries,
	}

	switch cfg.Command {
	case "store":
		return env.showStore(ctx, lg)
	case "products":
		return env.listProducts(ctx, lg)
	case "product":
		return env.showProduct(ctx, lg)
	case "delivery":
		return env.showDelivery(ctx, lg)
	case "login":
		return env.login(ctx, lg)
	case "me":
		return env.showProfile(ctx, lg)
	case "orders":
		return env.listOrders(ctx, lg)
	case "order":
		return env.showOrder(ctx, lg)
	case "submit":
		return env.submitOrder(ctx, lg)
	default:
		return errors.Errorf("unknown command %q", cfg.Command)
	}
}
