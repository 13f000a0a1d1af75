// Package payout delivers outbound transfers recorded in the payout outbox.
// A dispatcher polls pending payouts, hands each one to a worker, and marks
// it sent or failed once the sink has answered.
package payout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/campuspay/internal/config"
	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	batchLimit    = 1000
	workers       = 10
)

type Repo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Payout, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type Sink interface {
	Send(ctx context.Context, payout domain.Payout) error
}

// RetryAfterError asks the dispatcher to wait before the next attempt.
type RetryAfterError struct {
	After time.Duration
}

func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("payout sink busy, retry after %s", e.After)
}

type Service struct {
	repo           Repo
	sink           Sink
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	retryInterval  time.Duration
	inFlight       sync.Map
	delivered      sync.Map
	now            func() time.Time
}

func New(cfg *config.Config, repo Repo, sink Sink) *Service {
	interval := cfg.PayoutInterval
	if interval <= 0 {
		interval = time.Second * 5
	}
	return &Service{
		repo:           repo,
		sink:           sink,
		limit:          batchLimit,
		workerPool:     NewWorkerPool(workers),
		updateInterval: interval,
		retryInterval:  retryInterval,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout dispatcher started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout dispatcher")
			return
		case <-ticker.C:
			s.processPayouts(ctx)
		}
	}
}

func (s *Service) processPayouts(ctx context.Context) {
	payouts, err := s.repo.FindPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending payouts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, p := range payouts {
		p := p

		if _, loaded := s.inFlight.LoadOrStore(p.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				err := s.dispatch(ctx, p)
				s.inFlight.Delete(p.ID)
				return err
			})
			if err != nil {
				s.inFlight.Delete(p.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching payouts", zap.Error(err))
	}
}

// dispatch only retries the mark for a payout the sink already accepted,
// so a failed MarkSent never leads to a second delivery.
func (s *Service) dispatch(ctx context.Context, p domain.Payout) error {
	if sentAt, ok := s.delivered.Load(p.ID); ok {
		return s.markSent(ctx, p, sentAt.(time.Time))
	}
	return s.handlePayout(ctx, p)
}

func (s *Service) markSent(ctx context.Context, p domain.Payout, sentAt time.Time) error {
	if err := s.repo.MarkSent(ctx, p.ID, sentAt); err != nil {
		return fmt.Errorf("failed to mark payout %s sent: %w", p.ID, err)
	}
	s.delivered.Delete(p.ID)
	zap.L().Info("Payout sent",
		zap.Stringer("id", p.ID),
		zap.String("app", string(p.App)),
		zap.String("receiver", string(p.Receiver)),
		zap.Uint64("amount", p.Amount),
		zap.String("kind", string(p.Kind)),
	)
	return nil
}

func (s *Service) handlePayout(ctx context.Context, p domain.Payout) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = s.sink.Send(ctx, p)
		if err == nil {
			sentAt := s.now().UTC()
			s.delivered.Store(p.ID, sentAt)
			return s.markSent(ctx, p, sentAt)
		}
		if attempt == maxRetries {
			break
		}

		wait := s.retryInterval * time.Duration(attempt)
		var busy *RetryAfterError
		if errors.As(err, &busy) && busy.After > 0 {
			wait = busy.After
		}
		zap.L().Warn("Payout delivery failed, retrying",
			zap.Stringer("id", p.ID),
			zap.Int("attempt", attempt),
			zap.Duration("retryAfter", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	if markErr := s.repo.MarkFailed(ctx, p.ID, err.Error()); markErr != nil {
		return fmt.Errorf("failed to mark payout %s failed: %w", p.ID, markErr)
	}
	return fmt.Errorf("failed to deliver payout %s after %d retries: %w", p.ID, maxRetries, err)
}
