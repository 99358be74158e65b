// Package sarif provides the subset of the SARIF 2.1.0 object model needed to
// render analysis results, and a parser for it.
//
// Optional scalar fields are pointers so that "absent" can be told apart from
// a zero value. Only the fields used downstream are modeled; everything else
// in the input is ignored by encoding/json.
package sarif

import "encoding/json"

// Log represents the root SARIF log object.
type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema,omitempty"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single run of an analysis tool.
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results,omitempty"`
}

// Tool describes the analysis tool that produced the results.
type Tool struct {
	Driver ToolComponent `json:"driver"`
}

// ToolComponent represents the driver of an analysis tool.
type ToolComponent struct {
	Name    string                `json:"name"`
	Version *string               `json:"version,omitempty"`
	Rules   []ReportingDescriptor `json:"rules,omitempty"`
}

// ReportingDescriptor describes a rule declared by a tool.
type ReportingDescriptor struct {
	ID               string                    `json:"id"`
	Name             *string                   `json:"name,omitempty"`
	ShortDescription *MultiformatMessageString `json:"shortDescription,omitempty"`
	FullDescription  *MultiformatMessageString `json:"fullDescription,omitempty"`
	HelpURI          *string                   `json:"helpUri,omitempty"`
	Properties       *PropertyBag              `json:"properties,omitempty"`
}

// MultiformatMessageString represents a message in plain text and markdown.
type MultiformatMessageString struct {
	Text     string  `json:"text"`
	Markdown *string `json:"markdown,omitempty"`
}

// PropertyBag holds the well-known tags entry of a SARIF property bag and
// keeps every other entry as raw JSON.
type PropertyBag struct {
	Tags       []string
	Additional map[string]json.RawMessage
}

// Result represents a single finding reported by a tool.
type Result struct {
	RuleID    *string    `json:"ruleId,omitempty"`
	Level     *Level     `json:"level,omitempty"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

// Message represents a message to the user.
type Message struct {
	Text     *string `json:"text,omitempty"`
	Markdown *string `json:"markdown,omitempty"`
}

// Location represents a location of a result.
type Location struct {
	PhysicalLocation *PhysicalLocation `json:"physicalLocation,omitempty"`
}

// PhysicalLocation represents a physical location in an artifact.
type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation,omitempty"`
	Region           *Region           `json:"region,omitempty"`
}

// ArtifactLocation represents the location of an artifact.
type ArtifactLocation struct {
	URI *string `json:"uri,omitempty"`
}

// Region represents a region within an artifact.
type Region struct {
	StartLine   *int64 `json:"startLine,omitempty"`
	StartColumn *int64 `json:"startColumn,omitempty"`
}

// Level is the SARIF result level. Values outside the constants below are
// kept verbatim so that consumers can decide how to treat them.
type Level string

const (
	LevelNone    Level = "none"
	LevelNote    Level = "note"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// IsValid reports whether the level is one of the SARIF 2.1.0 levels.
func (l Level) IsValid() bool {
	switch l {
	case LevelNone, LevelNote, LevelWarning, LevelError:
		return true
	default:
		return false
	}
}

// URI returns the artifact URI of the location, or "" when there is none.
func (p *PhysicalLocation) URI() string {
	if p == nil || p.ArtifactLocation == nil || p.ArtifactLocation.URI == nil {
		return ""
	}
	return *p.ArtifactLocation.URI
}
