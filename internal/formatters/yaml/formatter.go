// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"citation-scout/internal/core"
	"citation-scout/internal/detector"
	"citation-scout/internal/formatters"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-friendly consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

// yamlResult mirrors the JSON surface with yaml tags.
type yamlResult struct {
	Filename      string       `yaml:"filename"`
	CitationCount int          `yaml:"citation_count"`
	Citations     []yamlMatch  `yaml:"citations"`
	TextPreview   string       `yaml:"extracted_text_preview"`
}

type yamlMatch struct {
	Type   detector.CitationType `yaml:"type"`
	Text   string                `yaml:"text"`
	Status string                `yaml:"status"`
}

type yamlDiagnostics struct {
	Filename       string           `yaml:"filename"`
	CharacterCount int              `yaml:"character_count"`
	Diagnostics    []yamlDiagnostic `yaml:"pattern_diagnostics"`
}

type yamlDiagnostic struct {
	Type       detector.CitationType `yaml:"type"`
	MatchCount int                   `yaml:"match_count"`
	Samples    []string              `yaml:"samples"`
}

func (f *Formatter) Format(result *core.Result, options formatters.FormatterOptions) (string, error) {
	out := yamlResult{
		Filename:      result.Filename,
		CitationCount: result.CitationCount,
		TextPreview:   result.TextPreview,
	}
	for _, m := range result.Citations {
		out.Citations = append(out.Citations, yamlMatch{Type: m.Type, Text: m.Text, Status: m.Status})
	}
	return marshal(out)
}

func (f *Formatter) FormatDiagnostics(result *core.DiagnosticsResult, options formatters.FormatterOptions) (string, error) {
	out := yamlDiagnostics{
		Filename:       result.Filename,
		CharacterCount: result.CharacterCount,
	}
	for _, d := range result.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, yamlDiagnostic{Type: d.Type, MatchCount: d.MatchCount, Samples: d.Samples})
	}
	return marshal(out)
}

func marshal(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
