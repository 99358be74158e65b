package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Parser errors.
var (
	ErrInvalidSARIF = errors.New("invalid SARIF format")
	ErrEmptyInput   = errors.New("input is empty")
)

// Parse decodes a SARIF log from JSON.
//
// The top level must be an object carrying a "runs" field or a "version"
// marker. Fields the renderer does not need are not validated; a document
// missing optional fields still parses. No partial log is returned on error.
func Parse(data []byte) (*Log, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSARIF, ErrEmptyInput)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSARIF, err)
	}
	if !IsSARIFShape(probe) {
		return nil, fmt.Errorf("%w: top-level object has neither \"runs\" nor \"version\"", ErrInvalidSARIF)
	}

	var log Log
	if err := json.Unmarshal(trimmed, &log); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSARIF, err)
	}

	return &log, nil
}

// IsSARIFShape reports whether a decoded top-level object looks like a
// SARIF log.
func IsSARIFShape(top map[string]json.RawMessage) bool {
	if top == nil {
		return false
	}
	if _, ok := top["runs"]; ok {
		return true
	}
	_, ok := top["version"]
	return ok
}
