// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pdfMaxPages bounds extraction for very large documents.
const pdfMaxPages = 50

// PDFFragments extracts page text from a PDF payload. PDF exposes no
// region structure, so every page contributes body fragments. Unreadable
// payloads yield a *ParseError.
func PDFFragments(data []byte) (fragments []Fragment, err error) {
	// The PDF reader panics on some malformed cross-reference tables;
	// surface those as parse errors like any other bad payload.
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = &ParseError{Format: "pdf", Err: fmt.Errorf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Format: "pdf", Err: err}
	}

	pageCount := reader.NumPage()
	if pageCount > pdfMaxPages {
		pageCount = pdfMaxPages
	}

	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		if text != "" {
			fragments = append(fragments, Fragment{Text: text, Region: RegionBody})
		}
	}

	return fragments, nil
}

// DocxFragments parses a DOCX payload and collects its fragments in one
// step, mirroring PDFFragments for the router.
func DocxFragments(data []byte) ([]Fragment, error) {
	document, err := ParseDocx(data)
	if err != nil {
		return nil, err
	}
	return document.Fragments(), nil
}
