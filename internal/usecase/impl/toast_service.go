// Package impl contains the concrete use case implementations.
package impl

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// exitDelay is how long an exiting toast stays in the queue so the exit
// transition can play before removal.
const exitDelay = 300 * time.Millisecond

type toastRecord struct {
	sessionID string
	toast     *entity.Toast
	dismiss   *time.Timer
	exit      *time.Timer
}

type toastService struct {
	mu        sync.Mutex
	bySession map[string][]*toastRecord
	byID      map[string]*toastRecord
}

// NewToastService creates the in-memory toast queue.
func NewToastService() usecase.ToastUsecase {
	return &toastService{
		bySession: make(map[string][]*toastRecord),
		byID:      make(map[string]*toastRecord),
	}
}

func resolveDuration(toastType entity.ToastType, override []time.Duration) time.Duration {
	if len(override) > 0 {
		return override[0]
	}

	return toastType.Duration()
}

func (s *toastService) Show(sessionID, message string, toastType entity.ToastType, duration ...time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &toastRecord{
		sessionID: sessionID,
		toast: &entity.Toast{
			ID:        uuid.NewString(),
			Message:   message,
			Type:      toastType,
			CreatedAt: time.Now(),
		},
	}
	s.bySession[sessionID] = append(s.bySession[sessionID], record)
	s.byID[record.toast.ID] = record

	s.armDismissLocked(record, resolveDuration(toastType, duration))

	return record.toast.ID
}

func (s *toastService) Update(id, message string, toastType entity.ToastType, duration ...time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok || record.toast.IsExiting {
		return false
	}

	if record.dismiss != nil {
		record.dismiss.Stop()
		record.dismiss = nil
	}

	record.toast.Message = message
	record.toast.Type = toastType
	s.armDismissLocked(record, resolveDuration(toastType, duration))

	return true
}

func (s *toastService) Hide(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return false
	}

	if record.dismiss != nil {
		record.dismiss.Stop()
	}
	if record.exit != nil {
		record.exit.Stop()
	}
	s.removeLocked(record)

	return true
}

func (s *toastService) Active(sessionID string) []*entity.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.bySession[sessionID]
	toasts := make([]*entity.Toast, 0, len(records))
	for _, record := range records {
		clone := *record.toast
		toasts = append(toasts, &clone)
	}

	return toasts
}

// armDismissLocked schedules the two-phase removal. A zero duration
// (loading) is never auto-dismissed.
func (s *toastService) armDismissLocked(record *toastRecord, duration time.Duration) {
	if duration <= 0 {
		return
	}

	id := record.toast.ID
	record.dismiss = time.AfterFunc(duration, func() {
		s.beginExit(id)
	})
}

func (s *toastService) beginExit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok || record.toast.IsExiting {
		return
	}

	record.toast.IsExiting = true
	record.exit = time.AfterFunc(exitDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if current, stillThere := s.byID[id]; stillThere {
			s.removeLocked(current)
		}
	})
}

func (s *toastService) removeLocked(record *toastRecord) {
	delete(s.byID, record.toast.ID)

	queue := s.bySession[record.sessionID]
	for i, candidate := range queue {
		if candidate == record {
			s.bySession[record.sessionID] = append(queue[:i], queue[i+1:]...)

			break
		}
	}
	if len(s.bySession[record.sessionID]) == 0 {
		delete(s.bySession, record.sessionID)
	}
}
