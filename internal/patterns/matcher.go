// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"strings"

	"citation-scout/internal/detector"
)

// FindCitations applies every recognizer to the normalized buffer and
// returns all unique matches in registry order, then within-type match
// order. Uniqueness is scoped per type: the same trimmed text can appear
// under two different types when both recognizers match it. The result is
// never nil: a citation-free document yields an empty slice so the wire
// surface serializes as a JSON array.
func (r *Registry) FindCitations(text string) []detector.Match {
	citations := []detector.Match{}
	for _, rec := range r.recognizers {
		citations = append(citations, r.findByType(text, rec)...)
	}
	return citations
}

// findByType scans the buffer with one recognizer using standard
// leftmost-first non-overlapping semantics, trims the designated capture,
// and drops duplicates (first occurrence wins).
func (r *Registry) findByType(text string, rec Recognizer) []detector.Match {
	var matches []detector.Match
	seen := make(map[string]bool)

	for _, groups := range rec.Regex.FindAllStringSubmatch(text, -1) {
		value := strings.TrimSpace(groups[1])
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		matches = append(matches, detector.Match{
			Type:   rec.Type,
			Text:   value,
			Status: r.classifier.Classify(value),
		})
	}

	return matches
}

// Diagnostics runs the identical matching and dedup logic as FindCitations
// and reports, per registered type, the unique match count and up to
// sampleLimit sample texts. Counts therefore always agree with the primary
// extraction path for the same input. A non-positive sampleLimit falls back
// to the default of 5.
func (r *Registry) Diagnostics(text string, sampleLimit int) []detector.Diagnostic {
	if sampleLimit <= 0 {
		sampleLimit = 5
	}

	diagnostics := make([]detector.Diagnostic, 0, len(r.recognizers))
	for _, rec := range r.recognizers {
		matches := r.findByType(text, rec)
		samples := make([]string, 0, sampleLimit)
		for _, m := range matches {
			if len(samples) == sampleLimit {
				break
			}
			samples = append(samples, m.Text)
		}
		diagnostics = append(diagnostics, detector.Diagnostic{
			Type:       rec.Type,
			MatchCount: len(matches),
			Samples:    samples,
		})
	}
	return diagnostics
}
