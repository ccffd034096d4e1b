// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "testing"

func TestHashClassifier_KnownBuckets(t *testing.T) {
	classifier := NewHashClassifier()

	cases := []struct {
		text   string
		status string
	}{
		{"Brown v. Board of Education, 347 U.S. 483 (1954)", StatusInvalid},
		{"42 U.S.C. § 1983", StatusReview},
		{"29 C.F.R. § 1614.105", StatusValid},
		{"test citation", StatusValid},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			if got := classifier.Classify(tc.text); got != tc.status {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.status)
			}
		})
	}
}

func TestHashClassifier_Stable(t *testing.T) {
	classifier := NewHashClassifier()

	// Same text must always land in the same bucket, regardless of how
	// often or in what order it is classified.
	texts := []string{"42 U.S.C. § 1983", "", "a", "42 U.S.C. § 1983"}
	first := make(map[string]string)
	for i := 0; i < 3; i++ {
		for _, text := range texts {
			got := classifier.Classify(text)
			if want, seen := first[text]; seen && got != want {
				t.Fatalf("Classify(%q) unstable: %q then %q", text, want, got)
			}
			first[text] = got
		}
	}
}

func TestHashClassifier_OnlyKnownStatuses(t *testing.T) {
	classifier := NewHashClassifier()
	valid := map[string]bool{StatusValid: true, StatusReview: true, StatusInvalid: true}

	for _, text := range []string{"x", "y", "z", "123", "§", "Brown v. Board"} {
		if got := classifier.Classify(text); !valid[got] {
			t.Errorf("Classify(%q) = %q, not a known status", text, got)
		}
	}
}
