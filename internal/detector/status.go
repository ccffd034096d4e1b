// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "crypto/md5"

// Status values produced by classifiers.
const (
	StatusValid   = "valid"
	StatusReview  = "review"
	StatusInvalid = "invalid"
)

// HashClassifier is an illustrative status classifier: it buckets a citation
// by hashing its text, so identical text always yields the same status. The
// mapping carries no legal meaning; it stands in for a lookup against a real
// citation authority.
type HashClassifier struct{}

// NewHashClassifier creates the placeholder classifier.
func NewHashClassifier() *HashClassifier {
	return &HashClassifier{}
}

// Classify maps the last hex digit of the MD5 of text to one of three
// buckets. Deterministic and pure: no time, ordering, or state involved.
func (c *HashClassifier) Classify(text string) string {
	sum := md5.Sum([]byte(text))
	switch (sum[len(sum)-1] & 0x0f) % 3 {
	case 0:
		return StatusValid
	case 1:
		return StatusReview
	default:
		return StatusInvalid
	}
}
