// Package snyk decodes the JSON produced by `snyk test --json` for open
// source and container projects.
package snyk

// Project is the result of testing a single Snyk project.
type Project struct {
	ProjectName       string          `json:"projectName"`
	Org               string          `json:"org"`
	Path              string          `json:"path"`
	DisplayTargetFile string          `json:"displayTargetFile"`
	PackageManager    string          `json:"packageManager"`
	Docker            *Docker         `json:"docker,omitempty"`
	OK                bool            `json:"ok"`
	Vulnerabilities   []Vulnerability `json:"vulnerabilities"`
}

// Docker is present when the project is a container image.
type Docker struct {
	BaseImage string `json:"baseImage,omitempty"`
}

// Vulnerability is one vulnerable dependency path reported by Snyk.
// The same vulnerability ID appears once per introducing path.
type Vulnerability struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Severity     string      `json:"severity"`
	PackageName  string      `json:"packageName"`
	Version      string      `json:"version"`
	CVSSScore    *float64    `json:"cvssScore,omitempty"`
	IsUpgradable bool        `json:"isUpgradable"`
	IsPatchable  bool        `json:"isPatchable"`
	Identifiers  Identifiers `json:"identifiers"`
	From         []string    `json:"from"`
}

// Identifiers holds the external identifiers of a vulnerability.
type Identifiers struct {
	CVE []string `json:"CVE,omitempty"`
	CWE []string `json:"CWE,omitempty"`
}

// IsContainer reports whether the project was a container image scan.
func (p *Project) IsContainer() bool {
	return p.Docker != nil
}
