package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/budget"
	"github.com/strategic-planning/backend/internal/domain/entity"
)

// GetPlanReportInput represents the input for the stepped report of a plan.
type GetPlanReportInput struct {
	PlanID         uuid.UUID
	OrganizationID int64
	Role           entity.UserRole
}

// GetPlanReportOutput represents the stepped report of a plan.
type GetPlanReportOutput struct {
	Plan   *entity.Plan
	Report budget.Report
}

// GetPlanReportUseCase handles plan report projection.
type GetPlanReportUseCase struct {
	planRepo adapter.PlanRepository
	reader   *PlanReader
}

// NewGetPlanReportUseCase creates a new GetPlanReportUseCase instance.
func NewGetPlanReportUseCase(planRepo adapter.PlanRepository, reader *PlanReader) *GetPlanReportUseCase {
	return &GetPlanReportUseCase{
		planRepo: planRepo,
		reader:   reader,
	}
}

// Execute returns the report header and rows of the plan.
func (uc *GetPlanReportUseCase) Execute(ctx context.Context, input GetPlanReportInput) (*GetPlanReportOutput, error) {
	p, err := findAccessiblePlan(ctx, uc.planRepo, input.PlanID, input.OrganizationID, input.Role)
	if err != nil {
		return nil, err
	}

	report, err := uc.reader.Report(ctx, p)
	if err != nil {
		return nil, err
	}

	return &GetPlanReportOutput{
		Plan:   p,
		Report: report,
	}, nil
}

// ExportPlanReportOutput represents an encoded report file.
type ExportPlanReportOutput struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportPlanReportUseCase handles encoding a plan report into a file.
type ExportPlanReportUseCase struct {
	report  *GetPlanReportUseCase
	encoder adapter.ReportEncoder
}

// NewExportPlanReportUseCase creates a new ExportPlanReportUseCase instance.
func NewExportPlanReportUseCase(report *GetPlanReportUseCase, encoder adapter.ReportEncoder) *ExportPlanReportUseCase {
	return &ExportPlanReportUseCase{
		report:  report,
		encoder: encoder,
	}
}

// Execute encodes the plan report.
func (uc *ExportPlanReportUseCase) Execute(ctx context.Context, input GetPlanReportInput) (*ExportPlanReportOutput, error) {
	out, err := uc.report.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	body, err := uc.encoder.Encode(out.Report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan report: %w", err)
	}

	return &ExportPlanReportOutput{
		Filename:    fmt.Sprintf("plan-%s-%s%s", filenameSafe(out.Plan.FiscalYear), out.Plan.ID, uc.encoder.Extension()),
		ContentType: uc.encoder.ContentType(),
		Body:        body,
	}, nil
}

var filenameReplacer = strings.NewReplacer("/", "-", "\\", "-", " ", "_", "\"", "")

func filenameSafe(s string) string {
	if s == "" {
		return "undated"
	}
	return filenameReplacer.Replace(s)
}
