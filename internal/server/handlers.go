package server

import (
	"net/http"
	"strings"
	"time"

	"textsmith/internal/converter"
	"textsmith/internal/models"
	"textsmith/internal/summarizer"
)

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "Only POST requests are allowed")
		return
	}

	var req summarizeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, r, http.StatusBadRequest, "Empty text provided")
		return
	}

	mode := summarizer.Mode(req.Type)
	if mode == "" {
		mode = summarizer.ModeConcise
	}
	if !summarizer.IsValidMode(mode) {
		s.writeError(w, r, http.StatusBadRequest, "type must be 'concise' or 'detailed'")
		return
	}

	maxLength := 0
	if req.MaxLength != nil {
		if *req.MaxLength <= 0 {
			s.writeError(w, r, http.StatusBadRequest, "max_length must be a positive integer")
			return
		}
		maxLength = *req.MaxLength
	}

	result, err := s.summarizer.Summarize(r.Context(), req.Text, summarizer.Options{
		Mode:      mode,
		MaxLength: maxLength,
	})
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to generate summary",
			"error", err,
			"mode", mode,
			"maxLength", maxLength)

		s.writeError(w, r, http.StatusInternalServerError, "Failed to generate summary")
		return
	}

	resp := summarizeResponse{
		Summary:        result.Summary,
		OriginalLength: result.OriginalLength,
		SummaryLength:  result.SummaryLength,
	}

	now := time.Now().UTC()
	id, err := s.db.SaveSummary(r.Context(), &models.SummaryRecord{
		OriginalText:   req.Text,
		SummaryText:    result.Summary,
		OriginalLength: result.OriginalLength,
		SummaryLength:  result.SummaryLength,
		SummaryType:    string(mode),
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.cfg.DataTTL),
	})
	if err != nil {
		// The summary is still useful; report the storage failure inline.
		s.log.ErrorContext(r.Context(), "Failed to save summary",
			"error", err,
			"mode", mode)

		resp.Warning = "Summary generated but not saved"
	} else {
		resp.ID = id
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "Only POST requests are allowed")
		return
	}

	var req markdownRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, r, http.StatusBadRequest, "Empty text provided")
		return
	}

	mode := converter.Mode(req.Mode)
	if mode == "" {
		mode = converter.ModeToMarkdown
	}
	if !converter.IsValidMode(mode) {
		s.writeError(w, r, http.StatusBadRequest, "Invalid conversion mode")
		return
	}

	result, err := s.converter.Convert(req.Text, mode)
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to convert text",
			"error", err,
			"mode", mode)

		s.writeError(w, r, http.StatusInternalServerError, "Error converting text")
		return
	}

	resp := markdownResponse{Result: result}

	now := time.Now().UTC()
	if _, err = s.db.SaveConversion(r.Context(), &models.ConversionRecord{
		OriginalText:   req.Text,
		ConvertedText:  result,
		ConversionType: string(mode),
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.cfg.DataTTL),
	}); err != nil {
		s.log.ErrorContext(r.Context(), "Failed to save conversion",
			"error", err,
			"mode", mode)

		resp.Warning = "Conversion completed but not saved"
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "Only GET requests are allowed")
		return
	}

	if err := s.db.Ping(r.Context()); err != nil {
		s.writeJSON(w, r, http.StatusInternalServerError, healthResponse{
			Status:   "degraded",
			Database: "error: " + err.Error(),
		})
		return
	}

	summaryCount, err := s.db.CountSummaries(r.Context())
	if err != nil {
		s.writeJSON(w, r, http.StatusInternalServerError, healthResponse{
			Status:   "degraded",
			Database: "error: " + err.Error(),
		})
		return
	}

	conversionCount, err := s.db.CountConversions(r.Context())
	if err != nil {
		s.writeJSON(w, r, http.StatusInternalServerError, healthResponse{
			Status:   "degraded",
			Database: "error: " + err.Error(),
		})
		return
	}

	s.writeJSON(w, r, http.StatusOK, healthResponse{
		Status:     "healthy",
		Database:   "connected",
		APIVersion: apiVersion,
		Stats: &healthStats{
			SummaryRecords:         summaryCount,
			ConversionRecords:      conversionCount,
			CleanupIntervalSeconds: s.cfg.CleanupInterval.Seconds(),
			MaxRecordsPerTable:     s.cfg.MaxRecords,
			DataTTLHours:           s.cfg.DataTTL.Hours(),
		},
	})
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := jsonDecode(r, dst); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "Invalid JSON data provided")
		return false
	}
	return true
}
