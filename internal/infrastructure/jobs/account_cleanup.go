package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/logger"
)

const (
	// unverifiedRetention is how long an unverified account may linger
	// before the cleanup purges it.
	unverifiedRetention = 7 * 24 * time.Hour
	// cleanupBatchSize caps how many accounts one sweep removes.
	cleanupBatchSize = 100
)

// AccountCleanupJob permanently removes accounts that never verified
// their email address. Their profile slugs were never published, so a
// hard delete is safe here.
type AccountCleanupJob struct {
	userRepo repositories.UserRepository
	interval time.Duration
	stop     chan struct{}
}

// NewAccountCleanupJob creates a new account cleanup job
func NewAccountCleanupJob(userRepo repositories.UserRepository) *AccountCleanupJob {
	return &AccountCleanupJob{
		userRepo: userRepo,
		interval: time.Hour,
		stop:     make(chan struct{}),
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called
func (j *AccountCleanupJob) Start(ctx context.Context) {
	logger.Info(ctx, "account cleanup job started", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "account cleanup job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "account cleanup job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// Stop signals the loop to exit
func (j *AccountCleanupJob) Stop() {
	close(j.stop)
}

func (j *AccountCleanupJob) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-unverifiedRetention)
	stale, err := j.userRepo.ListUnverifiedBefore(ctx, cutoff, cleanupBatchSize)
	if err != nil {
		logger.Error(ctx, "account cleanup listing failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(stale))
	for _, u := range stale {
		ids = append(ids, u.ID)
	}

	if err := j.userRepo.Purge(ctx, ids); err != nil {
		logger.Error(ctx, "account cleanup purge failed", zap.Error(err))
		return
	}
	logger.Info(ctx, "unverified accounts purged", zap.Int("count", len(ids)))
}
