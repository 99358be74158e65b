// Package report wraps the supported input formats behind a single parsed
// Document and detects which format a piece of JSON is.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fulgas/sarif-to-md/internal/sarif"
	"github.com/fulgas/sarif-to-md/internal/snyk"
)

// Kind identifies the schema of a parsed document.
type Kind int

const (
	// KindUnknown is the zero value and never describes a parsed document
	KindUnknown Kind = iota
	// KindSARIF is a SARIF 2.1.0 log
	KindSARIF
	// KindSnyk is the output of `snyk test --json`
	KindSnyk
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindSARIF:
		return "sarif"
	case KindSnyk:
		return "snyk"
	default:
		return "unknown"
	}
}

// ErrUnknownKind is returned when the input matches none of the supported
// document shapes.
var ErrUnknownKind = errors.New("unrecognized document: expected a SARIF log (\"runs\" or \"version\") or a Snyk report (\"vulnerabilities\")")

// Document is one parsed input. Exactly one of SARIF and Snyk is set,
// according to Kind.
type Document struct {
	Kind  Kind
	SARIF *sarif.Log
	Snyk  []snyk.Project
}

// ParseError is returned when the input cannot be turned into a Document.
type ParseError struct {
	Kind Kind // KindUnknown when detection itself failed
	Err  error
}

func (e *ParseError) Error() string {
	if e.Kind == KindUnknown {
		return fmt.Sprintf("failed to parse report: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse %s report: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes content and detects its kind from the top-level object.
// A SARIF log is recognized by a "runs" or "version" field, a Snyk report
// by a "vulnerabilities" field. Top-level arrays are rejected; use ParseAs
// with KindSnyk for multi-project Snyk output.
func Parse(content []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w", sarif.ErrInvalidSARIF, sarif.ErrEmptyInput)}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, &ParseError{Err: err}
	}

	switch {
	case sarif.IsSARIFShape(top):
		return ParseAs(KindSARIF, trimmed)
	case snyk.IsSnykShape(top):
		return ParseAs(KindSnyk, trimmed)
	default:
		return nil, &ParseError{Err: ErrUnknownKind}
	}
}

// ParseAs decodes content as the given kind without detection.
func ParseAs(kind Kind, content []byte) (*Document, error) {
	switch kind {
	case KindSARIF:
		log, err := sarif.Parse(content)
		if err != nil {
			return nil, &ParseError{Kind: kind, Err: err}
		}
		return &Document{Kind: kind, SARIF: log}, nil
	case KindSnyk:
		projects, err := snyk.Parse(content)
		if err != nil {
			return nil, &ParseError{Kind: kind, Err: err}
		}
		return &Document{Kind: kind, Snyk: projects}, nil
	default:
		return nil, &ParseError{Kind: kind, Err: ErrUnknownKind}
	}
}

// Merge combines documents of the same kind into one. SARIF runs and Snyk
// projects are concatenated in argument order.
func Merge(docs ...*Document) (*Document, error) {
	if len(docs) == 0 {
		return nil, errors.New("no documents to merge")
	}

	kind := docs[0].Kind
	merged := &Document{Kind: kind}
	logs := make([]*sarif.Log, 0, len(docs))

	for i, doc := range docs {
		if doc.Kind != kind {
			return nil, fmt.Errorf("cannot merge %s document %d into %s report", doc.Kind, i, kind)
		}
		switch kind {
		case KindSARIF:
			logs = append(logs, doc.SARIF)
		case KindSnyk:
			merged.Snyk = append(merged.Snyk, doc.Snyk...)
		}
	}

	if kind == KindSARIF {
		merged.SARIF = sarif.MergeLogs(logs...)
	}
	return merged, nil
}
