// Package view builds the render-ready model of a report: per-run finding
// views with their rule metadata and severity histogram, and per-project
// vulnerability views for Snyk output.
package view

import "github.com/fulgas/sarif-to-md/internal/sarif"

// Level is the severity of a SARIF finding as shown in the report
type Level int

const (
	// LevelNone is used for findings without actionable severity
	LevelNone Level = iota
	// LevelNote is informational
	LevelNote
	// LevelWarning is the default for findings that carry no level
	LevelWarning
	// LevelError is the most severe level
	LevelError
)

// Levels returns all levels in report order, most severe first.
func Levels() []Level {
	return []Level{LevelError, LevelWarning, LevelNote, LevelNone}
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelError:
		return "Error"
	case LevelWarning:
		return "Warning"
	case LevelNote:
		return "Note"
	case LevelNone:
		return "None"
	default:
		return "Unknown"
	}
}

// LevelFromSARIF maps a result level. An absent level is a warning; a level
// that is present but not one of error, warning or note is None.
func LevelFromSARIF(level *sarif.Level) Level {
	if level == nil {
		return LevelWarning
	}
	if !level.IsValid() {
		return LevelNone
	}
	switch *level {
	case sarif.LevelError:
		return LevelError
	case sarif.LevelWarning:
		return LevelWarning
	case sarif.LevelNote:
		return LevelNote
	default:
		return LevelNone
	}
}
