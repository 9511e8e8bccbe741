package entity

import "time"

// ToastType determines both the styling and the auto-dismiss window of a
// toast. Loading toasts never dismiss on their own; they must be updated
// into success/error or hidden explicitly.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastLoading ToastType = "loading"
	ToastInfo    ToastType = "info"
)

// Duration returns the auto-dismiss window for the type. Zero means the
// toast stays until explicitly updated or hidden.
func (t ToastType) Duration() time.Duration {
	switch t {
	case ToastSuccess, ToastInfo:
		return 3500 * time.Millisecond
	case ToastError:
		return 4 * time.Second
	default:
		return 0
	}
}

// Toast is an ephemeral, session-local notification of an operation's
// outcome. IsExiting marks the first phase of removal so the exit
// transition can play before the toast is dropped from the queue.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      ToastType `json:"type"`
	IsExiting bool      `json:"isExiting"`
	CreatedAt time.Time `json:"createdAt"`
}
