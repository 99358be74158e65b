package output

import (
	"embed"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/fulgas/sarif-to-md/internal/view"
)

const (
	sarifTemplate = "sarif.md.tmpl"
	snykTemplate  = "snyk.md.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("report").Funcs(template.FuncMap{
		"inc":    func(i int) int { return i + 1 },
		"join":   func(items []string) string { return strings.Join(items, ", ") },
		"path":   func(deps []string) string { return inline(strings.Join(deps, " > ")) },
		"yesno":  yesNo,
		"inline": inline,
		"text":   text,
		"code":   codeSpan,
		"link":   link,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

var (
	htmlEscaper    = strings.NewReplacer("<", "&lt;")
	newlineFlatten = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	// absoluteURI matches what CommonMark accepts as an autolink.
	absoluteURI = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]{1,31}:[^\s<>]*$`)
)

// inline puts report text on a single line so it cannot end a heading,
// table cell or list item early. Raw HTML is neutralized.
func inline(s string) string {
	return htmlEscaper.Replace(newlineFlatten.Replace(s))
}

// text renders multi-line report text as the body of a list item: every
// continuation line is indented to stay inside the item.
func text(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(htmlEscaper.Replace(s), "\n"), "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}

// codeSpan wraps v in a backtick fence longer than any backtick run it
// contains.
func codeSpan(v any) string {
	s := newlineFlatten.Replace(fmt.Sprint(v))

	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}

	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	fence := strings.Repeat("`", longest+1)
	return fence + s + fence
}

// link renders an autolink for URIs with a scheme and an inline link for
// anything else. CommonMark autolinks require a scheme.
func link(uri string) string {
	if absoluteURI.MatchString(uri) {
		return "<" + uri + ">"
	}
	label := strings.NewReplacer("[", `\[`, "]", `\]`).Replace(inline(uri))
	dest := strings.NewReplacer("<", "%3C", ">", "%3E").Replace(newlineFlatten.Replace(uri))
	return "[" + label + "](<" + dest + ">)"
}

// execute runs the named template, wrapping engine failures.
func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return &TemplateError{Template: name, Err: err}
	}
	return nil
}

var icons = map[string]string{
	"report":   "🛡️",
	"tool":     "🔧",
	"project":  "📦",
	"summary":  "📊",
	"findings": "🔍",
	"location": "📍",
}

var levelIcons = map[view.Level]string{
	view.LevelError:   "🔴",
	view.LevelWarning: "🟡",
	view.LevelNote:    "🔵",
	view.LevelNone:    "⚪",
}

var vulnIcons = map[view.VulnSeverity]string{
	view.VulnCritical: "🟣",
	view.VulnHigh:     "🔴",
	view.VulnMedium:   "🟡",
	view.VulnLow:      "🔵",
}

// reportData is shared by every template. All non-ASCII text in the output
// comes from its methods, never from template literals.
type reportData struct {
	Timestamp string
	WithEmoji bool
	GFM       bool
}

// Icon returns the heading icon followed by a space, or "" without emoji.
func (d reportData) Icon(name string) string {
	if !d.WithEmoji {
		return ""
	}
	if icon, ok := icons[name]; ok {
		return icon + " "
	}
	return ""
}

// LevelLabel returns the level name, prefixed by its icon with emoji.
func (d reportData) LevelLabel(level view.Level) string {
	if d.WithEmoji {
		return levelIcons[level] + " " + level.String()
	}
	return level.String()
}

// SeverityLabel returns the Snyk severity name, prefixed by its icon with
// emoji.
func (d reportData) SeverityLabel(s view.VulnSeverity) string {
	if d.WithEmoji {
		return vulnIcons[s] + " " + s.String()
	}
	return s.String()
}

type sarifData struct {
	reportData
	Runs []view.RunView
}

type snykData struct {
	reportData
	Projects []view.ProjectView
}

type severityRow struct {
	Label string
	Count int
}

// SummaryRows lists the per-severity counts of a project, most severe first.
func (d snykData) SummaryRows(s view.VulnerabilitySummary) []severityRow {
	return []severityRow{
		{d.SeverityLabel(view.VulnCritical), s.Critical},
		{d.SeverityLabel(view.VulnHigh), s.High},
		{d.SeverityLabel(view.VulnMedium), s.Medium},
		{d.SeverityLabel(view.VulnLow), s.Low},
	}
}
