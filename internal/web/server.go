// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"citation-scout/internal/config"
	"citation-scout/internal/core"
	"citation-scout/internal/extract"
	"citation-scout/internal/version"
)

// WebServer exposes the scanning pipeline over HTTP. It is transport glue
// only: all extraction and matching behavior lives in core.
type WebServer struct {
	scanner       *core.Scanner
	maxUploadSize int64
	port          string
	server        *http.Server
}

// ErrorResponse is the JSON body returned for client and server failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewWebServer creates a web server around a shared scanner.
func NewWebServer(scanner *core.Scanner, cfg *config.Config) *WebServer {
	return &WebServer{
		scanner:       scanner,
		maxUploadSize: cfg.Web.MaxUploadSize,
		port:          cfg.Web.Port,
	}
}

// Start runs the server until it is stopped or fails.
func (ws *WebServer) Start() error {
	ws.server = &http.Server{
		Addr:              ":" + ws.port,
		Handler:           ws.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Printf("citation-scout web server listening on port %s\n", ws.port)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

// Handler builds the route table. Exposed so tests can exercise the routes
// without binding a socket.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", ws.handleHealth)
	mux.HandleFunc("/upload", ws.handleUpload)
	mux.HandleFunc("/debug", ws.handleDebug)
	return withCORS(mux)
}

// withCORS applies the permissive CORS policy the browser frontend relies
// on.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Short(),
	})
}

func (ws *WebServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := ws.readUpload(w, r)
	if !ok {
		return
	}

	result, err := ws.scanner.Scan(filename, data)
	if err != nil {
		writeScanError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (ws *WebServer) handleDebug(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := ws.readUpload(w, r)
	if !ok {
		return
	}

	result, err := ws.scanner.Diagnose(filename, data)
	if err != nil {
		writeScanError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// readUpload pulls the "file" part out of a multipart POST and enforces the
// caller-side preconditions: supported filename suffix, non-empty payload.
func (ws *WebServer) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return "", nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, ws.maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Request must include a 'file' upload.")
		return "", nil, false
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".docx" && ext != ".pdf" {
		writeError(w, http.StatusBadRequest, "Only .docx and .pdf files are supported.")
		return "", nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unable to read uploaded file.")
		return "", nil, false
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "Uploaded file is empty.")
		return "", nil, false
	}

	return header.Filename, data, true
}

// writeScanError maps pipeline failures onto HTTP statuses: every member of
// the input-error taxonomy is the client's fault.
func writeScanError(w http.ResponseWriter, err error) {
	var parseErr *extract.ParseError
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "Uploaded file is empty.")
	case errors.Is(err, core.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "Only .docx and .pdf files are supported.")
	case errors.As(err, &parseErr):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse .%s file.", parseErr.Format))
	default:
		writeError(w, http.StatusInternalServerError, "Internal error while scanning document.")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already gone; nothing useful left to do.
		return
	}
}
