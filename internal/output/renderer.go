package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fulgas/sarif-to-md/internal/report"
)

// Renderer defines the interface for Markdown renderers
type Renderer interface {
	// Render writes the document as Markdown to the writer. Nothing is
	// written when rendering fails.
	Render(w io.Writer, doc *report.Document) error
}

// Format represents a Markdown dialect
type Format string

const (
	FormatCommonMark     Format = "common-mark"
	FormatGitHubFlavored Format = "github-flavored"
)

// TimestampLayout is the layout of the generation time embedded in reports.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// Options control rendering details shared by both dialects.
type Options struct {
	// WithEmoji decorates headings and severities with icons
	WithEmoji bool
	// Now returns the generation time; time.Now when nil
	Now func() time.Time
}

func (o Options) timestamp() string {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return now().UTC().Format(TimestampLayout)
}

// ValidFormats returns the names of all supported formats
func ValidFormats() []string {
	return []string{string(FormatCommonMark), string(FormatGitHubFlavored)}
}

// IsValidFormat reports whether s names a supported format
func IsValidFormat(s string) bool {
	for _, f := range ValidFormats() {
		if f == s {
			return true
		}
	}
	return false
}

// ParseFormat converts a format name, rejecting unknown names
func ParseFormat(s string) (Format, error) {
	if !IsValidFormat(s) {
		return "", fmt.Errorf("invalid format %q: must be one of %s", s, strings.Join(ValidFormats(), ", "))
	}
	return Format(s), nil
}

// NewRenderer creates a renderer of the given format for documents of kind.
// Unknown formats fall back to CommonMark.
func NewRenderer(kind report.Kind, format Format, opts Options) Renderer {
	switch format {
	case FormatGitHubFlavored:
		return &GFMRenderer{Kind: kind, Options: opts}
	default:
		return &CommonMarkRenderer{Kind: kind, Options: opts}
	}
}

// Generate renders doc in the given format and returns the Markdown.
func Generate(doc *report.Document, format Format, opts Options) (string, error) {
	if doc == nil {
		return "", errors.New("no document to render")
	}

	var b strings.Builder
	if err := NewRenderer(doc.Kind, format, opts).Render(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}
