package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type notificationPoller struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type notificationService struct {
	api      service.APIClient
	logger   *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	pollers map[string]*notificationPoller
	items   map[string][]*entity.Notification
}

// NewNotificationService creates the notification use case.
func NewNotificationService(cfg *config.Config, api service.APIClient, logger *slog.Logger) usecase.NotificationUsecase {
	interval := cfg.Notification.PollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &notificationService{
		api:      api,
		logger:   logger,
		interval: interval,
		pollers:  map[string]*notificationPoller{},
		items:    map[string][]*entity.Notification{},
	}
}

func (s *notificationService) StartPolling(identity *entity.Identity, token string) {
	if identity == nil {
		return
	}

	s.mu.Lock()
	if prev, ok := s.pollers[identity.ID]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	poller := &notificationPoller{cancel: cancel, done: make(chan struct{})}
	s.pollers[identity.ID] = poller
	s.mu.Unlock()

	ctx = service.WithAccessToken(ctx, token)

	go s.run(ctx, identity, poller)
}

func (s *notificationService) EnsurePolling(identity *entity.Identity, token string) {
	if identity == nil {
		return
	}

	s.mu.Lock()
	if _, ok := s.pollers[identity.ID]; ok {
		s.mu.Unlock()

		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	poller := &notificationPoller{cancel: cancel, done: make(chan struct{})}
	s.pollers[identity.ID] = poller
	s.mu.Unlock()

	ctx = service.WithAccessToken(ctx, token)

	go s.run(ctx, identity, poller)
}

func (s *notificationService) run(ctx context.Context, identity *entity.Identity, poller *notificationPoller) {
	defer close(poller.done)

	// First poll fires right away so the badge is accurate on sign-in.
	s.poll(ctx, identity)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx, identity)
		}
	}
}

func (s *notificationService) poll(ctx context.Context, identity *entity.Identity) {
	if _, err := s.Refresh(ctx, identity); err != nil {
		if ctx.Err() != nil {
			return
		}
		// A failed poll keeps the previous state; the next tick retries.
		s.logger.Warn("notification poll failed",
			slog.String("userID", identity.ID),
			slog.Any("error", err))
	}
}

func (s *notificationService) StopPolling(userID string) {
	s.mu.Lock()
	poller, ok := s.pollers[userID]
	if ok {
		delete(s.pollers, userID)
	}
	delete(s.items, userID)
	s.mu.Unlock()

	if ok {
		poller.cancel()
		<-poller.done
	}
}

func (s *notificationService) Refresh(ctx context.Context, identity *entity.Identity) ([]*entity.Notification, error) {
	resp, err := s.api.Get(ctx, "/notifications")
	if err != nil {
		return nil, err
	}

	var fetched []*entity.Notification
	if err := resp.Decode(&fetched); err != nil {
		return nil, err
	}

	// The backend scopes by token, but a stray row for another user must
	// never surface here.
	owned := fetched[:0]
	for _, n := range fetched {
		if n.UserID == "" || n.UserID == identity.ID {
			owned = append(owned, n)
		}
	}

	s.mu.Lock()
	s.items[identity.ID] = owned
	s.mu.Unlock()

	return owned, nil
}

func (s *notificationService) Notifications(userID string) []*entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Notification, len(s.items[userID]))
	copy(out, s.items[userID])

	return out
}

func (s *notificationService) HasUnread(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items[userID] {
		if !n.IsRead {
			return true
		}
	}

	return false
}

func (s *notificationService) MarkAsRead(ctx context.Context, identity *entity.Identity, notificationID string) error {
	s.mu.Lock()
	var flipped *entity.Notification
	for _, n := range s.items[identity.ID] {
		if n.ID == notificationID && !n.IsRead {
			n.IsRead = true
			flipped = n

			break
		}
	}
	s.mu.Unlock()

	if _, err := s.api.Patch(ctx, "/notifications/"+notificationID+"/read", nil); err != nil {
		if flipped != nil {
			s.mu.Lock()
			flipped.IsRead = false
			s.mu.Unlock()
		}

		return err
	}

	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, identity *entity.Identity) error {
	s.mu.Lock()
	var flipped []*entity.Notification
	for _, n := range s.items[identity.ID] {
		if !n.IsRead {
			n.IsRead = true
			flipped = append(flipped, n)
		}
	}
	s.mu.Unlock()

	if _, err := s.api.Patch(ctx, "/notifications/read-all", nil); err != nil {
		s.mu.Lock()
		for _, n := range flipped {
			n.IsRead = false
		}
		s.mu.Unlock()

		return err
	}

	return nil
}

func (s *notificationService) Shutdown() {
	s.mu.Lock()
	pollers := make([]*notificationPoller, 0, len(s.pollers))
	for id, poller := range s.pollers {
		pollers = append(pollers, poller)
		delete(s.pollers, id)
	}
	s.mu.Unlock()

	for _, poller := range pollers {
		poller.cancel()
		<-poller.done
	}
}
