// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// CitationType identifies one of the fixed legal-citation families this
// scanner recognizes. The set is closed; ordering of values only matters
// for output ordering, which is owned by the pattern registry.
type CitationType string

const (
	TypeCase            CitationType = "case"
	TypeCaseShort       CitationType = "case_short"
	TypeStatute         CitationType = "statute"
	TypeStatuteState    CitationType = "statute_state"
	TypeRegulation      CitationType = "regulation"
	TypeRegulationState CitationType = "regulation_state"
	TypeLawReview       CitationType = "law_review"
	TypeAgencyPub       CitationType = "agency_publication"
	TypeForeignLaw      CitationType = "foreign_law"
	TypeConstitutional  CitationType = "constitutional"
)

// Match represents a single detected citation. Text is the matched span with
// surrounding whitespace trimmed; within one scan a given (Type, Text) pair
// appears at most once. The same text may appear under two different types
// when two recognizer families both match it.
type Match struct {
	Type   CitationType `json:"type"`
	Text   string       `json:"text"`
	Status string       `json:"status"`
}

// Diagnostic reports per-recognizer behavior for pattern tuning: how many
// unique matches a recognizer produced and a truncated sample of them.
type Diagnostic struct {
	Type       CitationType `json:"type"`
	MatchCount int          `json:"match_count"`
	Samples    []string     `json:"samples"`
}

// StatusClassifier assigns a validation status to a citation's text. The
// matching engine depends only on this interface so the placeholder
// implementation can be swapped for a real citation-validity service.
type StatusClassifier interface {
	Classify(text string) string
}
