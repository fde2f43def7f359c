package workers

import (
	"context"
	"time"

	"grindup_backend/internal/logger"
	"grindup_backend/internal/repositories"
)

// JobWorker runs background maintenance over job postings and auth
// state.
type JobWorker struct {
	jobRepo   repositories.JobRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewJobWorker(jobRepo repositories.JobRepository, tokenRepo repositories.RefreshTokenRepository) *JobWorker {
	return &JobWorker{jobRepo: jobRepo, tokenRepo: tokenRepo}
}

func (w *JobWorker) Start(ctx context.Context) {
	go w.autoCloseJobs(ctx)
	go w.cleanRefreshTokens(ctx)
}

// autoCloseJobs closes active postings whose application deadline has
// passed. Applying consults the deadline directly, so an hourly sweep
// is tight enough.
func (w *JobWorker) autoCloseJobs(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Job worker stopped")
			return
		case <-ticker.C:
			closed, err := w.jobRepo.CloseExpired(time.Now())
			logger.WorkerLog("job_worker", "close_expired", err)
			if err == nil && closed > 0 {
				logger.Info("Auto-closed expired job postings", "count", closed)
			}
		}
	}
}

func (w *JobWorker) cleanRefreshTokens(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := w.tokenRepo.CleanExpired()
			logger.WorkerLog("job_worker", "clean_refresh_tokens", err)
			if err == nil && removed > 0 {
				logger.Info("Removed expired refresh tokens", "count", removed)
			}
		}
	}
}
