// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"citation-scout/internal/core"
	"citation-scout/internal/detector"
	"citation-scout/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	statusColors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		statusColors: map[string]*color.Color{
			detector.StatusValid:   color.New(color.FgGreen),
			detector.StatusReview:  color.New(color.FgYellow),
			detector.StatusInvalid: color.New(color.FgRed),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *core.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "File: %s\n", result.Filename)
	fmt.Fprintf(&sb, "Citations found: %d\n", result.CitationCount)

	if len(result.Citations) > 0 {
		sb.WriteString("\n")
		currentType := detector.CitationType("")
		for _, citation := range result.Citations {
			if citation.Type != currentType {
				currentType = citation.Type
				fmt.Fprintf(&sb, "[%s]\n", currentType)
			}
			fmt.Fprintf(&sb, "  %-8s %s\n", f.colorStatus(citation.Status), citation.Text)
		}
	}

	if options.Verbose {
		sb.WriteString("\nExtracted text preview:\n")
		sb.WriteString(result.TextPreview)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (f *Formatter) FormatDiagnostics(result *core.DiagnosticsResult, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "File: %s\n", result.Filename)
	fmt.Fprintf(&sb, "Characters extracted: %d\n\n", result.CharacterCount)

	for _, diag := range result.Diagnostics {
		fmt.Fprintf(&sb, "%-20s %d match(es)\n", diag.Type, diag.MatchCount)
		for _, sample := range diag.Samples {
			fmt.Fprintf(&sb, "    %s\n", sample)
		}
	}

	if options.Verbose {
		sb.WriteString("\nExtracted text:\n")
		sb.WriteString(result.Text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// colorStatus renders a status label in its severity color.
func (f *Formatter) colorStatus(status string) string {
	if c, ok := f.statusColors[status]; ok {
		return c.Sprint(status)
	}
	return status
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
