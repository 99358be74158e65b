package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fulgas/sarif-to-md/internal/report"
	"github.com/fulgas/sarif-to-md/internal/view"
)

// CommonMarkRenderer renders plain CommonMark without embedded HTML
type CommonMarkRenderer struct {
	Kind    report.Kind
	Options Options
}

// Render writes the document as CommonMark
func (r *CommonMarkRenderer) Render(w io.Writer, doc *report.Document) error {
	return render(w, doc, FormatCommonMark, r.Kind, r.Options)
}

// GFMRenderer renders GitHub-flavored Markdown. Findings are wrapped in
// collapsible <details> blocks.
type GFMRenderer struct {
	Kind    report.Kind
	Options Options
}

// Render writes the document as GitHub-flavored Markdown
func (r *GFMRenderer) Render(w io.Writer, doc *report.Document) error {
	return render(w, doc, FormatGitHubFlavored, r.Kind, r.Options)
}

func render(w io.Writer, doc *report.Document, format Format, kind report.Kind, opts Options) error {
	got := report.KindUnknown
	if doc != nil {
		got = doc.Kind
	}
	if got != kind || kind == report.KindUnknown {
		return &UnsupportedReportKindError{Format: format, Expected: kind, Got: got}
	}

	base := reportData{
		Timestamp: opts.timestamp(),
		WithEmoji: opts.WithEmoji,
		GFM:       format == FormatGitHubFlavored,
	}

	var (
		name string
		data any
	)
	switch kind {
	case report.KindSARIF:
		name = sarifTemplate
		data = sarifData{reportData: base, Runs: view.BuildRunViews(doc.SARIF)}
	case report.KindSnyk:
		name = snykTemplate
		data = snykData{reportData: base, Projects: view.BuildProjectViews(doc.Snyk)}
	}

	var buf bytes.Buffer
	if err := execute(&buf, name, data); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
