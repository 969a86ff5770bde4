package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
	"github.com/colinoflynn/crcbeagle/internal/capture"
	"github.com/colinoflynn/crcbeagle/internal/report"
)

// SearchRequest is the JSON body accepted by POST /search. Messages and
// checks are parallel arrays of byte values (0-255), exactly as captured.
type SearchRequest struct {
	Messages [][]int `json:"messages"`
	Checks   [][]int `json:"checks"`
	// PDF requests a rendered report artifact alongside the JSON result.
	PDF bool `json:"pdf,omitempty"`
}

// SearchResponse wraps the search report with optional artifact references.
type SearchResponse struct {
	Report    *beagle.SearchReport `json:"report"`
	Artifacts []ArtifactRef        `json:"artifacts,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req SearchRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decode request: %v", err)})
		return
	}

	ds, err := capture.FromInts(req.Messages, req.Checks)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rep, err := s.newSearcher().Search(ds.Messages, ds.Checks)
	if err != nil {
		var cfgErr *beagle.ConfigError
		if errors.As(err, &cfgErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	resp := SearchResponse{Report: rep}
	if req.PDF {
		path, err := s.tempPath("report-*.pdf")
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		if err := report.SaveReportPDF(rep, path); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("render pdf: %v", err)})
			return
		}
		art, err := s.addArtifact(path, "recovery-report.pdf", "application/pdf", "report")
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		resp.Artifacts = append(resp.Artifacts, toRef(art))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	widthParam := r.URL.Query().Get("width")
	if widthParam == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "required query parameter: width"})
		return
	}
	width, err := strconv.Atoi(widthParam)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "width must be an integer"})
		return
	}
	entries := s.catalog(width)
	if len(entries) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("no catalog for width %d", width)})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleArtifactDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/artifacts/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	art, ok := s.getArtifact(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := os.Open(art.Path)
	if err != nil {
		http.Error(w, fmt.Sprintf("open artifact: %v", err), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		http.Error(w, fmt.Sprintf("stat artifact: %v", err), http.StatusInternalServerError)
		return
	}
	if art.ContentType != "" {
		w.Header().Set("Content-Type", art.ContentType)
	}
	w.Header().Set("Content-Length", fmt.Sprintf("%d", info.Size()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Name))
	http.ServeContent(w, r, art.Name, info.ModTime(), f)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
