// Package templates renders plan notification emails.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer handles email template rendering.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders both HTML and text versions of a template.
// A missing text version yields an empty text body.
func (r *Renderer) Render(templateName string, data any) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	if r.textTemplates.Lookup(templateName+".txt") == nil {
		return htmlBuf.String(), "", nil
	}

	var textBuf bytes.Buffer
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// PlanSubmittedData contains data for the plan submitted email.
type PlanSubmittedData struct {
	OrganizationName string
	PlannerName      string
	FiscalYear       string
	ReportURL        string
	PlanURL          string
}

// PlanReviewedData contains data for the plan reviewed email.
type PlanReviewedData struct {
	PlannerName   string
	EvaluatorName string
	Status        string
	Approved      bool
	Feedback      string
	FiscalYear    string
	PlanURL       string
}
