package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/store"
)

// HousekeepingService periodically deletes refresh token rows whose signed
// expiry has passed. Those tokens already fail verification; this only
// bounds the growth of the session table.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		Now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()
	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	}
}

// RunOnce deletes expired refresh tokens and reports how many went.
func (s *HousekeepingService) RunOnce(ctx context.Context) (int64, error) {
	n, err := s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx, s.Now())
	if err != nil {
		return 0, err
	}
	s.Logger.Info("housekeeping cleanup completed", "expired_refresh_tokens", n)
	return n, nil
}
