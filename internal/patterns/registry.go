// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the catalogue of legal-citation recognizers and the
// matching engine that applies them to normalized document text.
package patterns

import (
	"regexp"

	"citation-scout/internal/detector"
)

// Recognizer pairs a citation type with its compiled pattern. Capture group 1
// designates the citation text; the matcher trims it.
type Recognizer struct {
	Type  detector.CitationType
	Regex *regexp.Regexp
}

// Recognizer notes:
//   - All patterns are case-insensitive except case_short, which stays
//     case-sensitive to avoid over-matching on common capitalized words.
//   - Patterns anchor on structural cues (reporter abbreviations, section
//     markers, bracketed years) rather than sentence punctuation, because
//     document authoring tools routinely split citations across runs.
//   - RE2 has no lookbehind, so foreign_law uses a consumed one-character
//     left guard outside the capture group instead of (?<!\w).

// Case citations: Party v./vs./versus Party, volume, reporter, page, optional
// pin cite, court/year parenthetical.
var caseCitation = regexp.MustCompile(`(?i)\b([A-Z][A-Za-z0-9.'&\- ]+\s+(?:v\.?|vs\.?|versus)\s+[A-Z][A-Za-z0-9.'&\- ]+,?\s+\d+\s+[A-Za-z. ]+\s*\d+(?:,\s*\d+)?\s+\([^)]*\d{4}\))`)

// Short-form citations, e.g. "Smith, 123 F.3d at 458". The reporter class
// admits digits so series reporters (F.3d, F. Supp. 2d) match.
var caseShort = regexp.MustCompile(`\b([A-Z][A-Za-z0-9.'&\- ]+,\s+\d+\s+[A-Za-z0-9. ]*[A-Za-z][A-Za-z0-9. ]*\s+at\s+\d+)\b`)

// Federal statutes: U.S.C. / U.S.C.A. with a section marker.
var statuteCitation = regexp.MustCompile(`(?i)\b(\d+\s+(?:U\.?S\.?C\.?A\.?|U\.?S\.?C\.?)(?:\s+§+\s*|\s+sec\.?\s+|\s+section\s+)\d+[A-Za-z0-9\-.]*)\b`)

// State statutes: recognized state + code-subject keyword + optional
// Code/Law/Stat. + section marker.
var stateStatute = regexp.MustCompile(`(?i)\b((?:Cal\.?|Calif\.?|N\.?Y\.?|New York|Tex\.?|Texas|Fla\.?|Florida|Ill\.?|Illinois|Pa\.?|Pennsylvania)\s+(?:Penal|Civil|Civ\.?|Fam\.?|Prob\.?|Govt?\.?|Health|Saf(?:\.|ety)?|Bus\.?(?:\s+&\s+Prof\.?)?|Com(?:\.|mercial)?|Corr\.?|Educ?\.?|Elec\.?|Fish|Food|Ins\.?|Lab(?:\.|or)?|Pub(?:\.|lic)?|Rev(?:\.|enue)?|Unemp(?:\.|loyment)?|Veh(?:\.|icle)?|Wat(?:\.|er)?|Welf(?:\.|are)?)\s+(?:Code|Law|Ann\.?|Stat(?:\.|utes)?)?\s*(?:§+\s*|sec\.?\s+|section\s+)\d+[A-Za-z0-9\-.]*)\b`)

// Federal regulations: C.F.R. with a section marker and optional decimal
// subsection.
var regulationCitation = regexp.MustCompile(`(?i)\b(\d+\s+C\.?F\.?R\.?(?:\s+§+\s*|\s+sec\.?\s+|\s+section\s+)\d+(?:\.\d+)?[A-Za-z0-9\-.]*)\b`)

// State regulations: optional state prefix + Code of Regulations / Admin. +
// optional title + section marker.
var stateRegulation = regexp.MustCompile(`(?i)\b((?:Cal\.?|N\.?Y\.?|Tex\.?|Fla\.?|Ill\.?|Pa\.?\s)?\s*(?:Code|Comp\.?)?\s*(?:of)?\s*(?:Regs?\.?|Regulations|Admin(?:\.|istrative)?)\s*(?:Code)?\s*(?:tit\.?|title)?\s*\d+,?\s*(?:§+\s*|sec\.?\s+|section\s+)\d+[A-Za-z0-9\-.]*)\b`)

// Law review articles: optional author, optional quoted or unquoted title,
// volume, journal name ending in L. Rev., starting page, optional pincite
// and year.
var lawReview = regexp.MustCompile(`(?i)\b((?:(?:[A-Z][A-Za-z.'\- ]+(?:,\s*(?:Jr\.?|Sr\.?|II|III|IV|V))?,\s+)?(?:"[^"]+"|[A-Z][^,\n]{3,180}),\s+)?\d{1,3}\s+[A-Z][A-Za-z.&'\- ]+L\.?\s*Rev\.?\s+\d{1,5}(?:,\s*\d{1,5})?(?:\s*\(\d{4}\))?)`)

// Agency publications: Federal Register cites, SEC release numbers, FDA and
// EPA guidance/rule/report titles.
var agencyPublication = regexp.MustCompile(`(?i)\b((?:\d+\s+Fed\.?\s+Reg\.?\s+\d+)|(?:S\.?E\.?C\.?\s+(?:Release|Rel\.?)\s*(?:No\.?\s*)?[A-Za-z0-9/\-]+)|(?:(?:FDA|Food and Drug Administration)\s+Guidance(?:\s+for\s+Industry)?(?:[:\-]\s*[A-Z][^.;\n]+)?)|(?:(?:EPA|Environmental Protection Agency)\s+(?:Guidance|Final Rule|Report|Technical Document|Notice)(?:[:\-]\s*[A-Z][^.;\n]+)?))`)

// Foreign law: bracketed-year UK Supreme Court, Law Reports AC, CJEU case
// numbers, EU directives, Canadian SCR, Australian HCA.
var foreignLaw = regexp.MustCompile(`(?i)(?:^|[^0-9A-Za-z_])((?:\[\d{4}\]\s+UKSC\s+\d+)|(?:\[\d{4}\]\s+\d+\s+AC\s+\d+)|(?:Case\s+C-\d+/\d+)|(?:Directive\s+\d{4}/\d+/EU)|(?:\[\d{4}\]\s+\d+\s+SCR\s+\d+)|(?:\[\d{4}\]\s+HCA\s+\d+))`)

// Constitutional citations: U.S. Const. or a state constitution reference,
// followed by one or more amendment/article/section/clause/part/paragraph
// designators.
var constitutional = regexp.MustCompile(`(?i)\b((?:U\.?S\.?\s+Const\.?|(?:Ala\.?|Alaska|Ariz\.?|Ark\.?|Cal\.?|Calif\.?|Colo\.?|Conn\.?|Del\.?|Fla\.?|Ga\.?|Haw\.?|Idaho|Ill\.?|Ind\.?|Iowa|Kan\.?|Ky\.?|La\.?|Maine|Md\.?|Mass\.?|Mich\.?|Minn\.?|Miss\.?|Mo\.?|Mont\.?|Neb\.?|Nev\.?|N\.?H\.?|N\.?J\.?|N\.?M\.?|N\.?Y\.?|N\.?C\.?|N\.?D\.?|Ohio|Okla\.?|Or\.?|Pa\.?|R\.?I\.?|S\.?C\.?|S\.?D\.?|Tenn\.?|Tex\.?|Utah|Vt\.?|Va\.?|Wash\.?|W\.?Va\.?|Wis\.?|Wyo\.?)\s+Const\.?)(?:\s*,?\s*(?:amend\.?\s*[IVXLC]+|art\.?\s*[IVXLC]+|§+\s*\d+[A-Za-z\-]*|sec\.?\s*\d+[A-Za-z\-]*|cl\.?\s*\d+|pt\.?\s*[IVXLC]+|para\.?\s*\d+))+)`)

// Registry is the immutable, ordered catalogue of recognizers plus the
// status classifier applied to each unique match. Construct it once at
// process start and share it freely; nothing here is mutated after
// construction, so concurrent use needs no synchronization.
type Registry struct {
	recognizers []Recognizer
	classifier  detector.StatusClassifier
}

// NewRegistry builds the registry with the default hash-based status
// classifier. Registry order determines diagnostic and output ordering;
// recognizers are logically independent and every one is always attempted.
func NewRegistry() *Registry {
	return NewRegistryWithClassifier(detector.NewHashClassifier())
}

// NewRegistryWithClassifier builds the registry with a caller-supplied
// status classifier.
func NewRegistryWithClassifier(classifier detector.StatusClassifier) *Registry {
	return &Registry{
		recognizers: []Recognizer{
			{detector.TypeCase, caseCitation},
			{detector.TypeCaseShort, caseShort},
			{detector.TypeStatute, statuteCitation},
			{detector.TypeStatuteState, stateStatute},
			{detector.TypeRegulation, regulationCitation},
			{detector.TypeRegulationState, stateRegulation},
			{detector.TypeLawReview, lawReview},
			{detector.TypeAgencyPub, agencyPublication},
			{detector.TypeForeignLaw, foreignLaw},
			{detector.TypeConstitutional, constitutional},
		},
		classifier: classifier,
	}
}

// Recognizers returns the ordered recognizer list.
func (r *Registry) Recognizers() []Recognizer {
	return r.recognizers
}
