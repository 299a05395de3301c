// Package server exposes the summarization and markdown conversion API over
// HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"textsmith/internal/config"
	"textsmith/internal/converter"
	"textsmith/internal/database"
	"textsmith/internal/summarizer"
)

const apiVersion = "1.0.0"

type Server struct {
	cfg        config.Config
	db         *database.Database
	summarizer summarizer.Summarizer
	converter  *converter.Converter
	log        *slog.Logger
}

func New(
	cfg config.Config,
	db *database.Database,
	s summarizer.Summarizer,
	c *converter.Converter,
	log *slog.Logger,
) *Server {
	return &Server{
		cfg:        cfg,
		db:         db,
		summarizer: s,
		converter:  c,
		log:        log,
	}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/summarize", s.cors(s.handleSummarize))
	mux.HandleFunc("/api/markdown", s.cors(s.handleMarkdown))
	mux.HandleFunc("/api/health", s.cors(s.handleHealth))
	return mux
}

// cors answers preflight requests and marks responses for the configured
// browser origins.
func (s *Server) cors(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" &&
			slices.Contains(s.cfg.CORSOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to encode response",
			"error", err,
			"path", r.URL.Path)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	s.writeJSON(w, r, statusCode, errorResponse{Error: message})
}

func jsonDecode(r *http.Request, dst any) error {
	defer func() {
		_ = r.Body.Close()
	}()

	return json.NewDecoder(r.Body).Decode(dst)
}
