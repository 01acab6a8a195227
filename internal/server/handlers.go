package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/spacesedan/adpulse/internal/models"
	"github.com/spacesedan/adpulse/internal/pipeline"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Datasets map[string]int    `json:"datasets"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	if err := pipeline.ValidateRequest(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	// Only deterministic text-only analyses are cacheable; image analysis
	// goes through the vision model.
	cacheable := req.ImageBase64 == ""
	var cacheKey string
	if cacheable {
		cacheKey = CacheKey(req)
		if cached, ok := s.cache.Get(r.Context(), cacheKey); ok {
			slog.Info("[Server] Returning cached analysis",
				slog.String("request_id", req.RequestID))
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	response, err := s.analyzer.AnalyzeCampaign(r.Context(), req)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoContent) || errors.Is(err, pipeline.ErrInvalidPlatform) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		slog.Error("[Server] Analysis failed",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
		return
	}

	if cacheable {
		s.cache.Put(r.Context(), cacheKey, response)
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, len(s.health)+1)
	healthy := true
	for name, flag := range s.health {
		if flag.Load() {
			checks[name] = "ok"
		} else {
			checks[name] = "unhealthy"
			healthy = false
		}
	}

	// Image analysis being unconfigured degrades features, not health.
	if s.analyzer.VisionEnabled() {
		checks["image_analysis"] = "ok"
	} else {
		checks["image_analysis"] = "disabled"
	}

	status := http.StatusOK
	body := healthResponse{
		Status: "ok",
		Checks: checks,
		Datasets: map[string]int{
			"cultural_triggers":    len(s.store.Triggers),
			"festival_calendar":    len(s.store.Festivals),
			"historical_campaigns": len(s.store.Campaigns),
		},
	}
	if !healthy {
		status = http.StatusServiceUnavailable
		body.Status = "degraded"
	}

	writeJSON(w, status, body)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("[Server] Failed to encode response",
			slog.String("error", err.Error()))
	}
}
