// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"citation-scout/internal/config"
	"citation-scout/internal/core"
	"citation-scout/internal/patterns"
)

func newTestHandler() http.Handler {
	scanner := core.NewScanner(patterns.NewRegistry())
	cfg, _ := config.LoadConfig("")
	return NewWebServer(scanner, cfg).Handler()
}

func sampleDocx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, mw.FormDataContentType()
}

func postUpload(t *testing.T, handler http.Handler, path, filename string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartUpload(t, filename, payload)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return resp.Detail
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %q", resp["status"])
	}
	if resp["version"] == "" {
		t.Error("version field empty")
	}
}

func TestUpload_HappyPath(t *testing.T) {
	doc := sampleDocx(t, "See Brown v. Board of Education, 347 U.S. 483 (1954) and 42 U.S.C. § 1983.")
	rec := postUpload(t, newTestHandler(), "/upload", "brief.docx", doc)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var result core.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Filename != "brief.docx" {
		t.Errorf("filename = %q", result.Filename)
	}
	if result.CitationCount != len(result.Citations) || result.CitationCount == 0 {
		t.Errorf("citation_count = %d, citations = %v", result.CitationCount, result.Citations)
	}
	if result.TextPreview == "" {
		t.Error("extracted_text_preview empty")
	}
}

func TestUpload_NoCitationsYieldsEmptyArray(t *testing.T) {
	doc := sampleDocx(t, "This paragraph cites nothing at all.")
	rec := postUpload(t, newTestHandler(), "/upload", "memo.docx", doc)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"citations":[]`) {
		t.Errorf("citations must serialize as an empty array, got: %s", body)
	}
	if strings.Contains(body, `"citations":null`) {
		t.Errorf("citations serialized as null: %s", body)
	}
}

func TestUpload_EmptyFile(t *testing.T) {
	rec := postUpload(t, newTestHandler(), "/upload", "brief.docx", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "Uploaded file is empty." {
		t.Errorf("detail = %q", detail)
	}
}

func TestUpload_WrongExtension(t *testing.T) {
	rec := postUpload(t, newTestHandler(), "/upload", "brief.txt", []byte("content"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "Only .docx and .pdf files are supported." {
		t.Errorf("detail = %q", detail)
	}
}

func TestUpload_CorruptDocx(t *testing.T) {
	rec := postUpload(t, newTestHandler(), "/upload", "brief.docx", []byte("not a zip"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "Unable to parse .docx file." {
		t.Errorf("detail = %q", detail)
	}
}

func TestUpload_MissingFilePart(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestUpload_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDebugEndpoint(t *testing.T) {
	doc := sampleDocx(t, "42 U.S.C. § 1983 appears here.")
	rec := postUpload(t, newTestHandler(), "/debug", "brief.docx", doc)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var result core.DiagnosticsResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if len(result.Diagnostics) != 10 {
		t.Errorf("pattern_diagnostics has %d entries, want one per pattern", len(result.Diagnostics))
	}
	if result.CharacterCount == 0 || result.Text == "" {
		t.Errorf("raw text missing: count=%d text=%q", result.CharacterCount, result.Text)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("allow-origin = %q", origin)
	}
}
