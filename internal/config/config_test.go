// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Defaults.Format != "text" {
		t.Errorf("format = %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.PreviewLength != 2000 {
		t.Errorf("preview_length = %d", cfg.Defaults.PreviewLength)
	}
	if cfg.Defaults.SampleLimit != 5 {
		t.Errorf("sample_limit = %d", cfg.Defaults.SampleLimit)
	}
	if cfg.Web.Port != "8080" {
		t.Errorf("port = %q", cfg.Web.Port)
	}
	if cfg.Web.MaxUploadSize != 20<<20 {
		t.Errorf("max_upload_size = %d", cfg.Web.MaxUploadSize)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  format: json
  preview_length: 500
  verbose: true
web:
  port: "9090"
profiles:
  review:
    format: yaml
    sample_limit: 10
    description: Pattern tuning profile
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Defaults.Format != "json" {
		t.Errorf("format = %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.PreviewLength != 500 {
		t.Errorf("preview_length = %d", cfg.Defaults.PreviewLength)
	}
	if !cfg.Defaults.Verbose {
		t.Error("verbose not set")
	}
	if cfg.Web.Port != "9090" {
		t.Errorf("port = %q", cfg.Web.Port)
	}

	profile := cfg.GetProfile("review")
	if profile == nil {
		t.Fatal("review profile missing")
	}
	if profile.Format != "yaml" || profile.SampleLimit != 10 {
		t.Errorf("profile = %+v", profile)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "defaults: [not a map")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  preview_length: -1
`)
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg == nil {
		t.Fatal("expected default config")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("format = %q", cfg.Defaults.Format)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("nil config should fail validation")
	}

	cfg, _ := LoadConfig("")
	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.Web.MaxUploadSize = -1
	if err := ValidateConfig(cfg); err == nil {
		t.Error("negative max_upload_size should fail validation")
	}
}

func TestGetProfile_Unknown(t *testing.T) {
	cfg, _ := LoadConfig("")
	if profile := cfg.GetProfile("does-not-exist"); profile != nil {
		t.Errorf("profile = %+v, want nil", profile)
	}
}

func TestListProfiles(t *testing.T) {
	path := writeConfigFile(t, `
profiles:
  quick: {}
  deep: {}
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	names := cfg.ListProfiles()
	if len(names) != 2 {
		t.Errorf("profiles = %v", names)
	}
}
