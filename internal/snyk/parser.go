package snyk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidReport is returned when the input is not a Snyk test report.
var ErrInvalidReport = errors.New("invalid Snyk report")

// Parse decodes Snyk test output. The input is either a single project
// object or, for multi-project runs, an array of project objects. Every
// project must carry a "vulnerabilities" field.
func Parse(data []byte) ([]Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrInvalidReport)
	}

	var raws []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidReport, err)
		}
	} else {
		raws = []json.RawMessage{trimmed}
	}

	projects := make([]Project, 0, len(raws))
	for i, raw := range raws {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, fmt.Errorf("%w: project %d: %w", ErrInvalidReport, i, err)
		}
		if !IsSnykShape(probe) {
			return nil, fmt.Errorf("%w: project %d has no \"vulnerabilities\" field", ErrInvalidReport, i)
		}

		var p Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: project %d: %w", ErrInvalidReport, i, err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// IsSnykShape reports whether a decoded top-level object looks like a Snyk
// project result.
func IsSnykShape(top map[string]json.RawMessage) bool {
	if top == nil {
		return false
	}
	_, ok := top["vulnerabilities"]
	return ok
}
