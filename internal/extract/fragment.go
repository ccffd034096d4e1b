// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract pulls authored text out of uploaded document containers.
// It yields ordered text fragments tagged with the structural region they
// came from; all semantic interpretation is left to later pipeline stages.
package extract

import "fmt"

// RegionKind is the structural origin of a text fragment.
type RegionKind string

const (
	RegionBody     RegionKind = "body"
	RegionTable    RegionKind = "table"
	RegionHeader   RegionKind = "header"
	RegionFooter   RegionKind = "footer"
	RegionFootnote RegionKind = "footnote"
	RegionEndnote  RegionKind = "endnote"
	RegionComment  RegionKind = "comment"
)

// Fragment is a span of authored text plus its originating region. Ordering
// among fragments follows document reading order as a best effort; it is not
// guaranteed across region kinds.
type Fragment struct {
	Text   string
	Region RegionKind
}

// ParseError reports a byte payload that could not be interpreted as the
// expected container format. It is a client-input failure, never retried.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
