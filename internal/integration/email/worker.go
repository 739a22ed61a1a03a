package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/email/templates"
)

// templateData builds the view model for one notification template from the queued values.
type templateData func(job *entity.EmailJob) any

var planTemplates = map[entity.EmailTemplateType]templateData{
	entity.TemplatePlanSubmitted: func(job *entity.EmailJob) any {
		return templates.PlanSubmittedData{
			OrganizationName: job.Value("organization_name"),
			PlannerName:      job.Value("planner_name"),
			FiscalYear:       job.Value("fiscal_year"),
			ReportURL:        job.Value("report_url"),
			PlanURL:          job.Value("plan_url"),
		}
	},
	entity.TemplatePlanReviewed: func(job *entity.EmailJob) any {
		status := job.Value("status")
		return templates.PlanReviewedData{
			PlannerName:   job.Value("planner_name"),
			EvaluatorName: job.Value("evaluator_name"),
			Status:        status,
			Approved:      status == string(entity.PlanStatusApproved),
			Feedback:      job.Value("feedback"),
			FiscalYear:    job.Value("fiscal_year"),
			PlanURL:       job.Value("plan_url"),
		}
	},
}

// Worker drains the notification queue for plan submissions and reviews.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
	now          func() time.Time
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig polls every five seconds, ten jobs at a time.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Start polls the queue until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Plan notification worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		w.drain(ctx)

		select {
		case <-ctx.Done():
			slog.Info("Plan notification worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessNow sends every job that is due, once.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.drain(ctx)
}

func (w *Worker) drain(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to load due notifications", "error", err)
		return
	}
	if len(jobs) > 0 {
		slog.Debug("Sending plan notifications", "count", len(jobs))
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.deliver(ctx, job)
	}
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"plan_id", job.PlanID,
		"template", job.TemplateType,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to claim notification", "error", err)
		return
	}

	resendID, err := w.send(ctx, job)
	if err != nil {
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) &&
			(emailErr.Code == domainerror.ErrCodePermanentEmailFailure || emailErr.Code == domainerror.ErrCodeTemplateRenderFailed)
		job.MarkFailed(err, permanent, w.now())
	} else {
		job.MarkSent(resendID, w.now())
	}

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		logger.Error("Failed to record notification outcome", "error", updateErr)
	}

	switch job.Status {
	case entity.EmailStatusSent:
		logger.Info("Plan notification sent", "resend_id", resendID)
	case entity.EmailStatusFailed:
		logger.Warn("Plan notification dropped", "attempts", job.Attempts, "last_error", job.LastError)
	default:
		logger.Info("Plan notification will be retried", "attempts", job.Attempts, "scheduled_at", job.ScheduledAt)
	}
}

func (w *Worker) send(ctx context.Context, job *entity.EmailJob) (string, error) {
	build, ok := planTemplates[job.TemplateType]
	if !ok {
		return "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"unknown template type "+string(job.TemplateType),
			domainerror.ErrTemplateRenderFailed,
		)
	}

	html, text, err := w.renderer.Render(string(job.TemplateType), build(job))
	if err != nil {
		return "", domainerror.NewEmailError(domainerror.ErrCodeTemplateRenderFailed, "render "+string(job.TemplateType), err)
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:       job.RecipientEmail,
		Name:     job.RecipientName,
		Subject:  job.Subject,
		HTML:     html,
		Text:     text,
		Template: string(job.TemplateType),
	})
	if err != nil {
		return "", err
	}
	return result.ResendID, nil
}
