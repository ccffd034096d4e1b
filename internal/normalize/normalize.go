// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize canonicalizes extracted document text into the single
// buffer citations are matched against. Authoring tools break citations
// across runs and lines and sprinkle in non-ASCII space variants; patterns
// operate on logical text, so all of that structure is deliberately
// destroyed here.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"citation-scout/internal/extract"
)

// Invisible and variant whitespace characters that would otherwise break
// pattern boundaries. The zero-width characters must vanish entirely rather
// than become separators.
var invisibleReplacer = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u2007", " ", // figure space
	"\u2009", " ", // thin space
	"\u200a", " ", // hair space
	"\u202f", " ", // narrow no-break space
	"\u2060", "", // word joiner
	"\ufeff", "", // byte order mark
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Text normalizes a single string: NFC composition, invisible-whitespace
// substitution, and collapse of every whitespace run to one ASCII space.
// Pure and total; it never fails.
func Text(s string) string {
	s = norm.NFC.String(s)
	s = invisibleReplacer.Replace(s)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Buffer joins the fragments with newlines in collection order and
// normalizes the result. The returned buffer contains none of the excluded
// characters and no consecutive whitespace.
func Buffer(fragments []extract.Fragment) string {
	texts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		texts = append(texts, fragment.Text)
	}
	return Text(strings.Join(texts, "\n"))
}
