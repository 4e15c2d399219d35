package telegram

import (
	"context"
	"sync"
	"time"

	"anishop/internal/shared/goroutine"
	"anishop/internal/shared/logger"
)

const (
	pollTimeoutSeconds = 30
	pollRetryDelay     = 5 * time.Second
)

// UpdateHandler consumes updates delivered by the polling loop.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update Update)
}

// OffsetStore persists the polling offset so restarts do not replay
// already handled updates.
type OffsetStore interface {
	GetOffset(ctx context.Context) (int64, error)
	SaveOffset(ctx context.Context, offset int64) error
}

// PollingService drives the long-polling loop. The offset survives restarts
// through the offset store so updates are not replayed.
type PollingService struct {
	bot     *BotService
	offsets OffsetStore
	handler UpdateHandler
	logger  logger.Interface

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPollingService(bot *BotService, offsets OffsetStore, handler UpdateHandler, logger logger.Interface) *PollingService {
	return &PollingService{
		bot:     bot,
		offsets: offsets,
		handler: handler,
		logger:  logger,
	}
}

// Start launches the polling loop in the background.
func (s *PollingService) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "telegram polling", func() {
		defer s.wg.Done()
		s.run(ctx)
	})
	s.logger.Infow("telegram polling started")
}

// Stop cancels the loop and waits for the in-flight poll to finish.
func (s *PollingService) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.logger.Infow("telegram polling stopped")
}

func (s *PollingService) run(ctx context.Context) {
	offset, err := s.offsets.GetOffset(ctx)
	if err != nil {
		s.logger.Warnw("failed to load polling offset, starting from scratch", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := s.bot.GetUpdates(ctx, offset, pollTimeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Errorw("failed to get updates", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, update := range updates {
			s.handler.HandleUpdate(ctx, update)
			offset = update.UpdateID + 1
		}

		if len(updates) > 0 {
			if err := s.offsets.SaveOffset(ctx, offset); err != nil {
				s.logger.Warnw("failed to save polling offset", "error", err)
			}
		}
	}
}
