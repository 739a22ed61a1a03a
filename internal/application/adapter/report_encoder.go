package adapter

import "github.com/strategic-planning/backend/internal/domain/budget"

// ReportEncoder renders a plan report into a downloadable file format.
type ReportEncoder interface {
	Encode(report budget.Report) ([]byte, error)
	ContentType() string
	Extension() string
}
