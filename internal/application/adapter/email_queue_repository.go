package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// FindByPlanID retrieves the jobs queued for a plan.
	FindByPlanID(ctx context.Context, planID uuid.UUID) ([]*entity.EmailJob, error)
}
