// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"citation-scout/internal/config"
	"citation-scout/internal/core"
	"citation-scout/internal/extract"
	"citation-scout/internal/formatters"
	"citation-scout/internal/patterns"
	"citation-scout/internal/version"
	"citation-scout/internal/web"

	// Import formatters to register them
	_ "citation-scout/internal/formatters/json"
	_ "citation-scout/internal/formatters/text"
	_ "citation-scout/internal/formatters/yaml"

	"golang.org/x/term"
)

// cliFlags holds command line flag values
type cliFlags struct {
	file        string
	format      string
	diagnostics bool
	verbose     bool
	noColor     bool
	configFile  string
	profile     string
	preview     int
	samples     int
	webMode     bool
	port        string
	showVersion bool
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.file, "file", "", "Path to the .docx or .pdf file to scan")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json, yaml")
	flag.BoolVar(&flags.diagnostics, "diagnostics", false, "Report per-pattern match counts and samples instead of full results")
	flag.BoolVar(&flags.verbose, "verbose", false, "Include extracted text in the output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.StringVar(&flags.configFile, "config", "", "Path to a YAML configuration file")
	flag.StringVar(&flags.profile, "profile", "", "Named configuration profile to apply")
	flag.IntVar(&flags.preview, "preview", 0, "Extracted-text preview length in characters")
	flag.IntVar(&flags.samples, "samples", 0, "Per-pattern sample limit in diagnostics output")
	flag.BoolVar(&flags.webMode, "web", false, "Start the web server instead of scanning a file")
	flag.StringVar(&flags.port, "port", "", "Web server port")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version information and exit")
	flag.Parse()
	return flags
}

// resolved holds effective settings after merging defaults, config file,
// profile, and flags (flags win).
type resolved struct {
	format  string
	verbose bool
	noColor bool
	preview int
	samples int
	port    string
}

func resolveConfiguration(flags *cliFlags, cfg *config.Config) (*resolved, error) {
	r := &resolved{
		format:  cfg.Defaults.Format,
		verbose: cfg.Defaults.Verbose,
		noColor: cfg.Defaults.NoColor,
		preview: cfg.Defaults.PreviewLength,
		samples: cfg.Defaults.SampleLimit,
		port:    cfg.Web.Port,
	}

	if flags.profile != "" {
		profile := cfg.GetProfile(flags.profile)
		if profile == nil {
			return nil, fmt.Errorf("unknown profile %q (available: %v)", flags.profile, cfg.ListProfiles())
		}
		if profile.Format != "" {
			r.format = profile.Format
		}
		if profile.PreviewLength > 0 {
			r.preview = profile.PreviewLength
		}
		if profile.SampleLimit > 0 {
			r.samples = profile.SampleLimit
		}
		r.verbose = r.verbose || profile.Verbose
		r.noColor = r.noColor || profile.NoColor
	}

	if flags.format != "" {
		r.format = flags.format
	}
	if flags.preview > 0 {
		r.preview = flags.preview
	}
	if flags.samples > 0 {
		r.samples = flags.samples
	}
	if flags.port != "" {
		r.port = flags.port
	}
	r.verbose = r.verbose || flags.verbose
	r.noColor = r.noColor || flags.noColor

	// Colored output only makes sense on a terminal.
	if !isTerminal(os.Stdout) {
		r.noColor = true
	}

	return r, nil
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	settings, err := resolveConfiguration(flags, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scanner := core.NewScanner(patterns.NewRegistry(),
		core.WithPreviewLength(settings.preview),
		core.WithSampleLimit(settings.samples),
	)

	if flags.webMode {
		cfg.Web.Port = settings.port
		server := web.NewWebServer(scanner, cfg)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: web server failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flags.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required (or use -web to start the server)")
		flag.Usage()
		os.Exit(1)
	}

	if err := runScan(flags, settings, scanner); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runScan executes a single CLI scan and prints the formatted result.
func runScan(flags *cliFlags, settings *resolved, scanner *core.Scanner) error {
	data, err := os.ReadFile(flags.file)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", flags.file, err)
	}

	options := formatters.FormatterOptions{
		Verbose: settings.verbose,
		NoColor: settings.noColor,
	}

	var output string
	if flags.diagnostics {
		result, err := scanner.Diagnose(flags.file, data)
		if err != nil {
			return describeScanError(err)
		}
		output, err = formatters.ExportDiagnostics(settings.format, result, options)
		if err != nil {
			return err
		}
	} else {
		result, err := scanner.Scan(flags.file, data)
		if err != nil {
			return describeScanError(err)
		}
		output, err = formatters.Export(settings.format, result, options)
		if err != nil {
			return err
		}
	}

	fmt.Println(output)
	return nil
}

// describeScanError rewords pipeline failures for the command line.
func describeScanError(err error) error {
	var parseErr *extract.ParseError
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		return errors.New("the file is empty")
	case errors.Is(err, core.ErrUnsupportedFormat):
		return errors.New("only .docx and .pdf files are supported")
	case errors.As(err, &parseErr):
		return err
	default:
		return err
	}
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
