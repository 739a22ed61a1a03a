package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// emailQueueRepository stores plan notifications in the email_queue table.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Create adds a new email job to the queue.
func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(emailModel)
	if result.Error != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to create email job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs returns pending notifications whose retry time has come, oldest schedule first.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.EmailStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}
	return toEmailJobs(models), nil
}

// Update saves changes to an email job.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	return r.db.WithContext(ctx).Save(emailModel).Error
}

// FindByPlanID retrieves the jobs queued for a plan, oldest first.
func (r *emailQueueRepository) FindByPlanID(ctx context.Context, planID uuid.UUID) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel
	result := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}
	return toEmailJobs(models), nil
}

func toEmailJobs(models []model.EmailQueueModel) []*entity.EmailJob {
	jobs := make([]*entity.EmailJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}
	return jobs
}
