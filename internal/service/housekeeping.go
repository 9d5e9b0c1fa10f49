package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/agrisense/agrisense/internal/store"
)

// HousekeepingService removes spent OTP rows and expired sessions on a
// timer. Retention is a separate concern from verification: expired codes
// fail verification whether or not the sweeper has run yet.
type HousekeepingService struct {
	store     store.Store
	logger    *slog.Logger
	interval  time.Duration
	retention time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHousekeepingService sweeps every interval. Spent OTP rows are kept for
// retention past their expiry before removal; expired sessions go right away.
func NewHousekeepingService(s store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	return &HousekeepingService{
		store:     s,
		logger:    logger,
		interval:  interval,
		retention: retention,
	}
}

// Start launches the sweeper goroutine. Calling Start on a running service
// is a no-op.
func (s *HousekeepingService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

// Stop halts the sweeper and waits for the in-flight pass to finish.
func (s *HousekeepingService) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *HousekeepingService) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one cleanup pass. Each cleanup is isolated: a failure in one is
// logged and the others still run.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	now := time.Now().UTC()

	if n, err := s.store.OTPs().DeleteExpiredBefore(ctx, now.Add(-s.retention)); err != nil {
		s.logger.Error("housekeeping: otp cleanup", slog.Any("error", err))
	} else if n > 0 {
		s.logger.Info("housekeeping: removed spent otps", slog.Int64("count", n))
	}

	if n, err := s.store.RefreshTokens().DeleteExpiredBefore(ctx, now); err != nil {
		s.logger.Error("housekeeping: session cleanup", slog.Any("error", err))
	} else if n > 0 {
		s.logger.Info("housekeeping: removed expired sessions", slog.Int64("count", n))
	}
}
