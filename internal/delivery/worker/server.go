// Package worker hosts the background notification pollers so they share
// the application lifecycle with the HTTP server.
package worker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"storefront/internal/delivery"
	"storefront/internal/usecase"
)

type pollerHost struct {
	logger        *slog.Logger
	notifications usecase.NotificationUsecase
	done          chan struct{}
}

// HostParams holds dependencies for the poller host.
type HostParams struct {
	fx.In

	Lc            fx.Lifecycle
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
}

// NewHost creates the poller host. Pollers are started per identity on
// login; the host's job is to keep them alive until shutdown and tear them
// all down on stop.
func NewHost(params HostParams) (delivery.Delivery, error) {
	host := &pollerHost{
		logger:        params.Logger,
		notifications: params.Notifications,
		done:          make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: host.stop,
	})

	return host, nil
}

// Serve blocks until shutdown. The pollers themselves run as goroutines
// owned by the notification use case.
func (h *pollerHost) Serve(ctx context.Context) error {
	h.logger.Info("Notification poller host running")

	select {
	case <-ctx.Done():
	case <-h.done:
	}

	return nil
}

func (h *pollerHost) stop(ctx context.Context) error {
	h.logger.Info("Stopping notification pollers")
	h.notifications.Shutdown()
	close(h.done)

	return nil
}
