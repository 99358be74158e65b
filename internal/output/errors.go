package output

import (
	"fmt"

	"github.com/fulgas/sarif-to-md/internal/report"
)

// TemplateError is returned when the template engine fails on a view.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("failed to render template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// UnsupportedReportKindError is returned when a renderer receives a
// document of a kind it was not created for.
type UnsupportedReportKindError struct {
	Format   Format
	Expected report.Kind
	Got      report.Kind
}

func (e *UnsupportedReportKindError) Error() string {
	return fmt.Sprintf("%s renderer for %s reports cannot render a %s report", e.Format, e.Expected, e.Got)
}
