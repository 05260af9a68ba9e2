package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// AnalysisRequest is the body of the single-text analysis endpoints.
type AnalysisRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the AnalysisRequest using the validator.
func (r *AnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MatchRequest is the body of the batch matching endpoint.
type MatchRequest struct {
	JobText    string                   `json:"jd_text" validate:"required"`
	Candidates []types.CandidateProfile `json:"candidate_resumes" validate:"required,min=1"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// envelope is the uniform success wrapper.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is required.")
		return
	}

	analysis, err := s.engine.AnalyzeResume(req.Text)
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: analysis})
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description text is required.")
		return
	}

	analysis, err := s.engine.AnalyzeJob(req.Text)
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: analysis})
}

func (s *Server) handleMatchCandidates(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description text and at least one candidate resume are required.")
		return
	}

	matches, err := s.engine.MatchCandidates(r.Context(), req.JobText, req.Candidates)
	if err != nil {
		s.engineError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: matches})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "resume-screener",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// decode reads a JSON body under the configured size limit. Returns false
// after writing the error response.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body exceeds the size limit.")
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) engineError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("engine failure",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	s.errorResponse(w, status, publicMessage(err))
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, detail string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "detail": detail})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}
