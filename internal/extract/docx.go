// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
)

const (
	docxMainPart = "word/document.xml"
	docxRelsPart = "word/_rels/document.xml.rels"
)

var (
	// Visible text runs. The optional attribute group keeps <w:tab/> and
	// other w:t-prefixed elements from matching.
	textRunRe = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>`)

	tableRe     = regexp.MustCompile(`(?s)<w:tbl[^>]*>.*?</w:tbl>`)
	paragraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	footnoteRe  = regexp.MustCompile(`(?s)<w:footnote\s[^>]*>.*?</w:footnote>|<w:footnote>.*?</w:footnote>`)
	endnoteRe   = regexp.MustCompile(`(?s)<w:endnote\s[^>]*>.*?</w:endnote>|<w:endnote>.*?</w:endnote>`)
	noteTypeRe  = regexp.MustCompile(`w:type="[^"]+"`)

	relationshipRe = regexp.MustCompile(`<Relationship\s[^>]*>`)
	relTypeRe      = regexp.MustCompile(`Type="([^"]*)"`)
	relTargetRe    = regexp.MustCompile(`Target="([^"]*)"`)

	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
)

// relatedRegions maps relationship-type suffixes from the document's
// relationship graph to the region kind of the target part.
var relatedRegions = []struct {
	suffix string
	region RegionKind
}{
	{"/header", RegionHeader},
	{"/footer", RegionFooter},
	{"/footnotes", RegionFootnote},
	{"/endnotes", RegionEndnote},
	{"/comments", RegionComment},
}

// Document is a parsed DOCX container: the XML parts a citation could
// plausibly appear in, keyed by archive member name. It is read-only after
// ParseDocx returns.
type Document struct {
	parts map[string][]byte
}

// ParseDocx interprets data as a DOCX archive. Corrupt, truncated, or
// non-zip payloads yield a *ParseError, as does an archive without the main
// document part.
func ParseDocx(data []byte) (*Document, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Format: "docx", Err: err}
	}

	parts := make(map[string][]byte)
	for _, file := range reader.File {
		if !strings.HasPrefix(file.Name, "word/") || !strings.HasSuffix(file.Name, ".xml") {
			if file.Name != docxRelsPart {
				continue
			}
		}
		rc, err := file.Open()
		if err != nil {
			return nil, &ParseError{Format: "docx", Err: err}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ParseError{Format: "docx", Err: err}
		}
		parts[file.Name] = content
	}

	if _, ok := parts[docxMainPart]; !ok {
		return nil, &ParseError{Format: "docx", Err: errors.New("word/document.xml not found in archive")}
	}

	return &Document{parts: parts}, nil
}

// part is one text-bearing document region. The fixed set of implementations
// covers the capability differences between regions: the body has structured
// content (tables, a paragraph fallback), note parts must skip placeholder
// entries, and the remaining related parts are plain run sequences.
type part interface {
	fragments() []Fragment
}

// Fragments walks every covered region and returns the collected fragments
// in reading order: body (tables inline) with the additive paragraph
// fallback, then footnotes, endnotes, and the remaining relationship-graph
// parts. Whitespace-only spans are discarded. Duplicate text across the
// primary and fallback body paths is expected; deduplication belongs to the
// citation matcher.
func (d *Document) Fragments() []Fragment {
	parts := []part{bodyPart{xml: d.parts[docxMainPart]}}

	for _, rel := range d.relatedParts() {
		content, ok := d.parts[rel.name]
		if !ok {
			continue
		}
		switch rel.region {
		case RegionFootnote:
			parts = append(parts, notesPart{xml: content, blockRe: footnoteRe, region: RegionFootnote})
		case RegionEndnote:
			parts = append(parts, notesPart{xml: content, blockRe: endnoteRe, region: RegionEndnote})
		default:
			parts = append(parts, runsPart{xml: content, region: rel.region})
		}
	}

	var fragments []Fragment
	for _, p := range parts {
		fragments = append(fragments, p.fragments()...)
	}
	return fragments
}

type relatedPart struct {
	name   string
	region RegionKind
}

// relatedParts resolves the document's relationship graph to the parts whose
// relationship type marks them as header, footer, footnote, endnote, or
// comment content. When the rels part is absent the well-known member names
// are probed directly.
func (d *Document) relatedParts() []relatedPart {
	rels, ok := d.parts[docxRelsPart]
	if !ok {
		return d.relatedPartsByName()
	}

	var related []relatedPart
	for _, relXML := range relationshipRe.FindAllString(string(rels), -1) {
		typeMatch := relTypeRe.FindStringSubmatch(relXML)
		targetMatch := relTargetRe.FindStringSubmatch(relXML)
		if typeMatch == nil || targetMatch == nil {
			continue
		}
		for _, candidate := range relatedRegions {
			if strings.HasSuffix(typeMatch[1], candidate.suffix) {
				related = append(related, relatedPart{
					name:   "word/" + strings.TrimPrefix(targetMatch[1], "/"),
					region: candidate.region,
				})
				break
			}
		}
	}
	return related
}

// relatedPartsByName is the no-relationships fallback: probe the standard
// member names Word writes for each related part.
func (d *Document) relatedPartsByName() []relatedPart {
	var related []relatedPart
	for name := range d.parts {
		base := strings.TrimPrefix(name, "word/")
		switch {
		case strings.HasPrefix(base, "header"):
			related = append(related, relatedPart{name, RegionHeader})
		case strings.HasPrefix(base, "footer"):
			related = append(related, relatedPart{name, RegionFooter})
		case base == "footnotes.xml":
			related = append(related, relatedPart{name, RegionFootnote})
		case base == "endnotes.xml":
			related = append(related, relatedPart{name, RegionEndnote})
		case base == "comments.xml":
			related = append(related, relatedPart{name, RegionComment})
		}
	}
	return related
}

// bodyPart covers the main content stream. Tables are read as inline text,
// one fragment per table; the remaining runs become body fragments. A
// secondary paragraph-level pass over the same XML is appended afterwards as
// a fallback for odd encodings; its output is additive, never replacing the
// primary runs.
type bodyPart struct {
	xml []byte
}

func (p bodyPart) fragments() []Fragment {
	source := string(p.xml)

	var fragments []Fragment
	remainder := tableRe.ReplaceAllStringFunc(source, func(table string) string {
		if text := joinRuns(table); text != "" {
			fragments = append(fragments, Fragment{Text: text, Region: RegionTable})
		}
		return " "
	})

	for _, run := range collectRuns(remainder) {
		fragments = append(fragments, Fragment{Text: run, Region: RegionBody})
	}

	// Fallback paragraph pass over the unmodified XML.
	for _, paragraph := range paragraphRe.FindAllString(source, -1) {
		if text := paragraphText(paragraph); text != "" {
			fragments = append(fragments, Fragment{Text: text, Region: RegionBody})
		}
	}

	return fragments
}

// notesPart covers footnotes and endnotes. Entries carrying a w:type
// attribute are separator/continuation placeholders rather than authored
// notes and are skipped; genuine entries contribute one fragment per
// paragraph.
type notesPart struct {
	xml     []byte
	blockRe *regexp.Regexp
	region  RegionKind
}

func (p notesPart) fragments() []Fragment {
	var fragments []Fragment
	for _, block := range p.blockRe.FindAllString(string(p.xml), -1) {
		openTag := block[:strings.Index(block, ">")+1]
		if noteTypeRe.MatchString(openTag) {
			continue
		}
		for _, paragraph := range paragraphRe.FindAllString(block, -1) {
			if text := paragraphText(paragraph); text != "" {
				fragments = append(fragments, Fragment{Text: text, Region: p.region})
			}
		}
	}
	return fragments
}

// runsPart covers headers, footers, and comments: every visible run is a
// fragment, no further structure assumed.
type runsPart struct {
	xml    []byte
	region RegionKind
}

func (p runsPart) fragments() []Fragment {
	var fragments []Fragment
	for _, run := range collectRuns(string(p.xml)) {
		fragments = append(fragments, Fragment{Text: run, Region: p.region})
	}
	return fragments
}

// collectRuns extracts the visible text runs from a WordprocessingML span,
// decoding XML entities and dropping whitespace-only runs.
func collectRuns(xml string) []string {
	var runs []string
	for _, groups := range textRunRe.FindAllStringSubmatch(xml, -1) {
		if text := strings.TrimSpace(entityReplacer.Replace(groups[1])); text != "" {
			runs = append(runs, text)
		}
	}
	return runs
}

// joinRuns concatenates a span's runs into one space-joined string.
func joinRuns(xml string) string {
	return strings.Join(collectRuns(xml), " ")
}

// paragraphText reassembles one paragraph the way Word authored it: runs are
// concatenated without separators (a citation is frequently split mid-token
// across runs) and only the whole is trimmed.
func paragraphText(xml string) string {
	var sb strings.Builder
	for _, groups := range textRunRe.FindAllStringSubmatch(xml, -1) {
		sb.WriteString(entityReplacer.Replace(groups[1]))
	}
	return strings.TrimSpace(sb.String())
}
