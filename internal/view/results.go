package view

import (
	"strconv"
	"strings"

	"github.com/fulgas/sarif-to-md/internal/sarif"
)

const (
	unknownRuleID = "unknown"
	noMessage     = "No message"
	unknownFile   = "unknown file"
)

// ResultView is a single finding ready for rendering.
type ResultView struct {
	RuleID       string
	Level        Level
	Message      string
	Locations    []Location
	RuleMetadata *RuleMetadata // nil when no declared rule matches RuleID
}

// Location is a resolved physical location of a finding.
type Location struct {
	File   *string
	Line   *int64
	Column *int64
}

// String formats the location as file:line:column, leaving out the parts
// that are not known.
func (l Location) String() string {
	var b strings.Builder
	if l.File != nil && *l.File != "" {
		b.WriteString(*l.File)
	} else {
		b.WriteString(unknownFile)
	}
	if l.Line != nil {
		b.WriteString(":")
		b.WriteString(strconv.FormatInt(*l.Line, 10))
		if l.Column != nil {
			b.WriteString(":")
			b.WriteString(strconv.FormatInt(*l.Column, 10))
		}
	}
	return b.String()
}

// MapResults converts the results of one run, attaching rule metadata
// from index by exact rule id. A result without a rule id is looked up
// as "unknown".
func MapResults(results []sarif.Result, index RuleIndex) []ResultView {
	views := make([]ResultView, 0, len(results))
	for _, result := range results {
		views = append(views, mapResult(result, index))
	}
	return views
}

func mapResult(result sarif.Result, index RuleIndex) ResultView {
	rv := ResultView{
		RuleID:    unknownRuleID,
		Level:     LevelFromSARIF(result.Level),
		Message:   resultMessage(result.Message),
		Locations: mapLocations(result.Locations),
	}
	if result.RuleID != nil {
		rv.RuleID = *result.RuleID
	}
	rv.RuleMetadata = index.Lookup(rv.RuleID)
	return rv
}

func resultMessage(msg sarif.Message) string {
	if msg.Text != nil && *msg.Text != "" {
		return *msg.Text
	}
	if msg.Markdown != nil && *msg.Markdown != "" {
		return *msg.Markdown
	}
	return noMessage
}

// mapLocations skips locations without physical location data.
func mapLocations(locations []sarif.Location) []Location {
	var out []Location
	for _, loc := range locations {
		phys := loc.PhysicalLocation
		if phys == nil {
			continue
		}

		var l Location
		if phys.ArtifactLocation != nil {
			l.File = phys.ArtifactLocation.URI
		}
		if phys.Region != nil {
			l.Line = phys.Region.StartLine
			l.Column = phys.Region.StartColumn
		}
		out = append(out, l)
	}
	return out
}
