// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"anishop/internal/shared/biztime"
	"anishop/internal/shared/logger"
)

// BatchJob is a scheduled job that processes a batch and reports how many
// items it touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns the single gocron instance for the server process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler running in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterCleanupJob schedules the cancelled-order purge. It runs hourly;
// the job itself only removes cancelled orders older than the cutoff, so the
// interval just bounds how stale the table can get.
func (m *SchedulerManager) RegisterCleanupJob(job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			removed, err := job.Execute(ctx)
			if err != nil {
				m.logger.Errorw("cleanup job failed", "error", err)
				return
			}
			if removed > 0 {
				m.logger.Infow("cleanup job removed cancelled orders", "count", removed)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("cancelled-order-cleanup"),
	)
	return err
}

// Start begins executing registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started")
}

// Stop shuts the scheduler down, waiting for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}
	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}
	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
