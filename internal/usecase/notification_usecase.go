package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationUsecase keeps per-identity notification state fresh by
// polling the backend on a fixed interval plus once on identity change.
// Each poller is a cancellable background task torn down on logout or
// shutdown.
type NotificationUsecase interface {
	// StartPolling registers a poller for the identity. It polls once
	// immediately and then on the configured interval. Restarting for the
	// same identity replaces the previous poller.
	StartPolling(identity *entity.Identity, token string)

	// EnsurePolling registers a poller only when the identity has none.
	// Sessions resumed from a still-valid token cookie get their poller
	// back this way without disturbing a live one.
	EnsurePolling(identity *entity.Identity, token string)

	// StopPolling cancels the identity's poller and drops its state.
	StopPolling(userID string)

	// Refresh performs one poll for the identity using ctx for the backend
	// call and returns the fetched notifications.
	Refresh(ctx context.Context, identity *entity.Identity) ([]*entity.Notification, error)

	// Notifications returns the last fetched notifications for the user.
	Notifications(userID string) []*entity.Notification

	// HasUnread reports whether any notification is unread. Always derived
	// from the collection, never cached separately.
	HasUnread(userID string) bool

	// MarkAsRead flips one notification optimistically and confirms with
	// the backend, reverting the flip if the call fails.
	MarkAsRead(ctx context.Context, identity *entity.Identity, notificationID string) error

	// MarkAllAsRead flips every notification, same optimistic contract.
	MarkAllAsRead(ctx context.Context, identity *entity.Identity) error

	// Shutdown cancels all pollers.
	Shutdown()
}
