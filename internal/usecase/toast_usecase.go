package usecase

import (
	"time"

	"storefront/internal/domain/entity"
)

// ToastUsecase is the per-session ephemeral message queue used to report
// operation outcomes. Auto-dismiss windows are type-determined; loading
// toasts live until they are updated into success/error or hidden. Removal
// is two-phase: a toast is first marked exiting so its transition can play,
// then dropped after a fixed delay.
type ToastUsecase interface {
	// Show enqueues a toast and returns its id. An explicit duration
	// overrides the type's default window.
	Show(sessionID, message string, toastType entity.ToastType, duration ...time.Duration) string

	// Update mutates a toast in place and restarts its dismiss window.
	// This is the only sanctioned way to resolve a loading toast.
	Update(id, message string, toastType entity.ToastType, duration ...time.Duration) bool

	// Hide cancels any pending auto-dismiss and removes immediately.
	Hide(id string) bool

	// Active returns the session's queue in insertion order, exiting
	// toasts included.
	Active(sessionID string) []*entity.Toast
}
