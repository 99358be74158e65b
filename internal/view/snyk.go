package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fulgas/sarif-to-md/internal/snyk"
)

// VulnSeverity is the Snyk severity of a vulnerability
type VulnSeverity int

const (
	// VulnLow also covers severities Snyk may add that are not known here
	VulnLow VulnSeverity = iota
	VulnMedium
	VulnHigh
	VulnCritical
)

// String returns the string representation of the severity
func (s VulnSeverity) String() string {
	switch s {
	case VulnCritical:
		return "Critical"
	case VulnHigh:
		return "High"
	case VulnMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// ParseVulnSeverity parses a Snyk severity string, ignoring case. Unknown
// values are treated as low.
func ParseVulnSeverity(s string) VulnSeverity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return VulnCritical
	case "high":
		return VulnHigh
	case "medium":
		return VulnMedium
	default:
		return VulnLow
	}
}

// ProjectType distinguishes container scans from application scans.
type ProjectType string

const (
	ProjectApplication ProjectType = "application"
	ProjectContainer   ProjectType = "container"
)

// VulnerabilityView is one unique vulnerability of a project with every
// dependency path that introduces it.
type VulnerabilityView struct {
	ID           string
	Title        string
	Severity     VulnSeverity
	PackageName  string
	Version      string
	CVSSScore    *float64
	IsUpgradable bool
	IsPatchable  bool
	CVEIDs       []string
	FromPaths    [][]string
}

// CVSS formats the CVSS score with one decimal, or "N/A" when there is none.
func (v VulnerabilityView) CVSS() string {
	if v.CVSSScore == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v.CVSSScore, 'f', 1, 64)
}

// VulnerabilitySummary counts unique vulnerabilities per severity.
type VulnerabilitySummary struct {
	Critical    int
	High        int
	Medium      int
	Low         int
	UniqueCount int
}

// ProjectView is everything the report shows for one Snyk project.
type ProjectView struct {
	Name            string
	Organization    string
	Type            ProjectType
	TargetFile      string
	PackageManager  string
	Vulnerabilities []VulnerabilityView
	Summary         VulnerabilitySummary
}

// BuildProjectViews assembles one view per project, in input order.
func BuildProjectViews(projects []snyk.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for i := range projects {
		views = append(views, BuildProjectView(&projects[i]))
	}
	return views
}

// BuildProjectView merges the per-path entries of each vulnerability id and
// orders the result by severity, most severe first. Vulnerabilities of the
// same severity keep their input order.
func BuildProjectView(p *snyk.Project) ProjectView {
	pv := ProjectView{
		Name:           p.ProjectName,
		Organization:   p.Org,
		Type:           ProjectApplication,
		TargetFile:     p.DisplayTargetFile,
		PackageManager: p.PackageManager,
	}
	if p.IsContainer() {
		pv.Type = ProjectContainer
	}

	pv.Vulnerabilities = mergeVulnerabilities(p.Vulnerabilities)
	sort.SliceStable(pv.Vulnerabilities, func(i, j int) bool {
		return pv.Vulnerabilities[i].Severity > pv.Vulnerabilities[j].Severity
	})
	pv.Summary = summarize(pv.Vulnerabilities)

	return pv
}

func mergeVulnerabilities(vulns []snyk.Vulnerability) []VulnerabilityView {
	seen := make(map[string]int, len(vulns))
	var out []VulnerabilityView

	for _, v := range vulns {
		if i, ok := seen[v.ID]; ok {
			if len(v.From) > 0 {
				out[i].FromPaths = append(out[i].FromPaths, v.From)
			}
			continue
		}

		vv := VulnerabilityView{
			ID:           v.ID,
			Title:        v.Title,
			Severity:     ParseVulnSeverity(v.Severity),
			PackageName:  v.PackageName,
			Version:      v.Version,
			CVSSScore:    v.CVSSScore,
			IsUpgradable: v.IsUpgradable,
			IsPatchable:  v.IsPatchable,
			CVEIDs:       v.Identifiers.CVE,
		}
		if len(v.From) > 0 {
			vv.FromPaths = [][]string{v.From}
		}

		seen[v.ID] = len(out)
		out = append(out, vv)
	}
	return out
}

func summarize(vulns []VulnerabilityView) VulnerabilitySummary {
	s := VulnerabilitySummary{UniqueCount: len(vulns)}
	for _, v := range vulns {
		switch v.Severity {
		case VulnCritical:
			s.Critical++
		case VulnHigh:
			s.High++
		case VulnMedium:
			s.Medium++
		default:
			s.Low++
		}
	}
	return s
}
