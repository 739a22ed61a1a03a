package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	jobs      map[uuid.UUID]*entity.EmailJob
	createErr error
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	if q.createErr != nil {
		return q.createErr
	}
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	now := time.Now().UTC()
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) && len(out) < limit {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) FindByPlanID(_ context.Context, planID uuid.UUID) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.PlanID == planID {
			out = append(out, job)
		}
	}
	return out, nil
}

func onlyJob(t *testing.T, q *memoryQueue) *entity.EmailJob {
	t.Helper()
	if len(q.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(q.jobs))
	}
	for _, job := range q.jobs {
		return job
	}
	return nil
}

func TestService_QueuePlanSubmittedEmail(t *testing.T) {
	planID := uuid.New()

	t.Run("queues to review inbox", func(t *testing.T) {
		queue := newMemoryQueue()
		service := NewService(queue, "review@moh.gov.et", "https://planning.moh.gov.et/")

		err := service.QueuePlanSubmittedEmail(context.Background(), adapter.PlanSubmittedNotice{
			PlanID:           planID.String(),
			OrganizationName: "Health Extension Desk",
			PlannerName:      "Abebe",
			FiscalYear:       "2025/26",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		job := onlyJob(t, queue)
		if job.RecipientEmail != "review@moh.gov.et" || job.TemplateType != entity.TemplatePlanSubmitted {
			t.Errorf("unexpected job %+v", job)
		}
		if job.PlanID != planID {
			t.Errorf("expected plan id %s, got %s", planID, job.PlanID)
		}
		if got := job.Value("plan_url"); got != "https://planning.moh.gov.et/plans/"+planID.String() {
			t.Errorf("unexpected plan url %q", got)
		}
	})

	t.Run("no inbox configured", func(t *testing.T) {
		service := NewService(newMemoryQueue(), "", "")
		err := service.QueuePlanSubmittedEmail(context.Background(), adapter.PlanSubmittedNotice{PlanID: planID.String()})
		if !errors.Is(err, domainerror.ErrMissingRecipient) {
			t.Errorf("expected ErrMissingRecipient, got %v", err)
		}
	})

	t.Run("queue failure is coded", func(t *testing.T) {
		queue := newMemoryQueue()
		queue.createErr = errors.New("db down")
		service := NewService(queue, "review@moh.gov.et", "")

		err := service.QueuePlanSubmittedEmail(context.Background(), adapter.PlanSubmittedNotice{PlanID: planID.String()})
		var emailErr *domainerror.EmailError
		if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeEmailQueueFailed {
			t.Errorf("expected queue failure code, got %v", err)
		}
	})
}

func TestWorker_SendsReviewedEmail(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	queue := newMemoryQueue()
	service := NewService(queue, "review@moh.gov.et", "")
	err = service.QueuePlanReviewedEmail(context.Background(), adapter.PlanReviewedNotice{
		PlanID:        uuid.NewString(),
		PlannerEmail:  "planner@moh.gov.et",
		PlannerName:   "Abebe",
		EvaluatorName: "Hana",
		Status:        string(entity.PlanStatusRejected),
		Feedback:      "Initiative weights exceed the objective",
		FiscalYear:    "2025/26",
	})
	if err != nil {
		t.Fatalf("queue: %v", err)
	}

	sender := NewMockEmailSender()
	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	worker.ProcessNow(context.Background())

	sent := sender.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sent))
	}
	if sent[0].To != "planner@moh.gov.et" || sent[0].Template != string(entity.TemplatePlanReviewed) {
		t.Errorf("unexpected email %+v", sent[0])
	}
	if !strings.Contains(sent[0].HTML, "rejected") || !strings.Contains(sent[0].Text, "Initiative weights exceed the objective") {
		t.Errorf("rendered bodies missing decision or feedback:\n%s\n%s", sent[0].HTML, sent[0].Text)
	}

	job := onlyJob(t, queue)
	if job.Status != entity.EmailStatusSent || job.ResendID != "mock-1" {
		t.Errorf("expected sent job, got status %s id %s", job.Status, job.ResendID)
	}
}

func TestWorker_RetriesTemporaryFailure(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	queue := newMemoryQueue()
	job := entity.NewEmailJob(uuid.New(), entity.TemplatePlanSubmitted, "review@moh.gov.et", "", "Plan submitted", map[string]string{"planner_name": "Abebe"})
	_ = queue.Create(context.Background(), job)

	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 service unavailable"), false)

	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusPending || job.Attempts != 1 {
		t.Errorf("expected pending retry after one attempt, got %s/%d", job.Status, job.Attempts)
	}

	sender.SetFailure(errors.New("422 validation error"), true)
	job.ScheduledAt = time.Now().UTC().Add(-time.Second)
	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Errorf("expected permanent failure, got %s", job.Status)
	}
}

func TestWorker_UnknownTemplateFailsPermanently(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	queue := newMemoryQueue()
	job := entity.NewEmailJob(uuid.New(), entity.EmailTemplateType("welcome"), "x@moh.gov.et", "", "Hi", nil)
	_ = queue.Create(context.Background(), job)

	worker := NewWorker(queue, NewMockEmailSender(), renderer, DefaultWorkerConfig())
	worker.ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Errorf("expected failed job, got %s", job.Status)
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("401 unauthorized"), true},
		{errors.New("422: validation_error"), true},
		{errors.New("429 rate limit exceeded"), false},
		{errors.New("500 internal server error"), false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.want {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
