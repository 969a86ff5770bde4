package server

import "net/http"

// NewRouter wires HTTP routes to the server's handlers.
func NewRouter(s *Server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/catalog", s.handleCatalog)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/artifacts/", s.handleArtifactDownload)
	return mux
}
