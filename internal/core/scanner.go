// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires extraction, normalization, and citation matching into
// the scanning pipeline shared by the CLI and the web server.
package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"citation-scout/internal/detector"
	"citation-scout/internal/extract"
	"citation-scout/internal/normalize"
	"citation-scout/internal/patterns"
)

// Client-input failures. Both are terminal: the payload itself is invalid,
// so nothing is retried and no partial result is produced.
var (
	ErrEmptyInput        = errors.New("uploaded file is empty")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// DefaultPreviewLength is how much normalized text Scan returns alongside
// the citations before truncation.
const DefaultPreviewLength = 2000

// DefaultSampleLimit caps per-pattern samples in diagnostics output.
const DefaultSampleLimit = 5

// Result is the output of the primary extraction path.
type Result struct {
	Filename      string           `json:"filename"`
	CitationCount int              `json:"citation_count"`
	Citations     []detector.Match `json:"citations"`
	TextPreview   string           `json:"extracted_text_preview"`

	// Text is the full normalized buffer; the JSON surface carries only
	// the preview.
	Text string `json:"-"`
}

// DiagnosticsResult is the output of the pattern-tuning path.
type DiagnosticsResult struct {
	Filename       string                `json:"filename"`
	Text           string                `json:"raw_extracted_text"`
	CharacterCount int                   `json:"character_count"`
	Diagnostics    []detector.Diagnostic `json:"pattern_diagnostics"`
}

// Scanner runs the extraction pipeline. It holds no per-call state: one
// Scanner is safely shared across concurrent requests.
type Scanner struct {
	registry      *patterns.Registry
	previewLength int
	sampleLimit   int
}

// ScannerOption adjusts Scanner construction.
type ScannerOption func(*Scanner)

// WithPreviewLength overrides the preview truncation length.
func WithPreviewLength(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.previewLength = n
		}
	}
}

// WithSampleLimit overrides the diagnostics sample cap.
func WithSampleLimit(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.sampleLimit = n
		}
	}
}

// NewScanner creates a scanner around an already-constructed pattern
// registry.
func NewScanner(registry *patterns.Registry, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		registry:      registry,
		previewLength: DefaultPreviewLength,
		sampleLimit:   DefaultSampleLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan extracts, normalizes, and matches the payload, returning every
// unique citation in registry order. Runs are independent and
// deterministic: identical bytes always produce identical output.
func (s *Scanner) Scan(filename string, data []byte) (*Result, error) {
	text, err := s.ExtractText(filename, data)
	if err != nil {
		return nil, err
	}

	citations := s.registry.FindCitations(text)
	return &Result{
		Filename:      filename,
		CitationCount: len(citations),
		Citations:     citations,
		Text:          text,
		TextPreview:   truncate(text, s.previewLength),
	}, nil
}

// Diagnose runs the same recognizers over the same buffer but reports
// per-pattern match counts and truncated samples instead of full results.
func (s *Scanner) Diagnose(filename string, data []byte) (*DiagnosticsResult, error) {
	text, err := s.ExtractText(filename, data)
	if err != nil {
		return nil, err
	}

	return &DiagnosticsResult{
		Filename:       filename,
		Text:           text,
		CharacterCount: len([]rune(text)),
		Diagnostics:    s.registry.Diagnostics(text, s.sampleLimit),
	}, nil
}

// ExtractText routes the payload to the extractor matching its filename
// extension and returns the normalized buffer. Input validation happens
// before any parsing is attempted.
func (s *Scanner) ExtractText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}

	ext := strings.ToLower(filepath.Ext(filename))
	var (
		fragments []extract.Fragment
		err       error
	)
	switch ext {
	case ".docx":
		fragments, err = extract.DocxFragments(data)
	case ".pdf":
		fragments, err = extract.PDFFragments(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}

	return normalize.Buffer(fragments), nil
}

// truncate shortens text to limit runes, appending a marker when content
// was dropped.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
