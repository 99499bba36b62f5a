package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-psi-bot/internal/models"
	"go-psi-bot/internal/stats"
)

// handleProfile handles GET /stats/{subject}
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	subject := mux.Vars(r)["subject"]
	profile := s.stats.Profile(subject, displayName(r, subject))

	s.writeResponse(w, &ProfileResponse{
		Success: true,
		Profile: profile,
		Caption: stats.FormatCaption(profile),
	})
}

// handleReading handles GET /stats/{subject}/{kind}
func (s *Server) handleReading(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	kind, err := models.ParseKind(vars["kind"])
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	reading := s.stats.Reading(vars["subject"], kind)
	s.writeResponse(w, &ReadingResponse{
		Success: true,
		Reading: reading,
		Text:    stats.FormatReading(reading),
	})
}

// handleWhoAmI handles GET /whoami/{subject}?name=. The caption is returned
// URL-encoded in X-Caption because it spans several lines.
func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	subject := mux.Vars(r)["subject"]

	image, caption, err := s.stats.WhoAmI(r.Context(), subject, displayName(r, subject))
	if err != nil {
		s.logger.Error("Failed to build whoami image", zap.String("subject", subject), zap.Error(err))
		s.writeErrorResponse(w, "Failed to build image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	w.Header().Set("X-Caption", url.QueryEscape(caption))
	if _, err := w.Write(image); err != nil {
		s.logger.Error("Failed to write image", zap.Error(err))
	}
}

// handleProof handles POST /proof
func (s *Server) handleProof(w http.ResponseWriter, r *http.Request) {
	var req ProofRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeErrorResponse(w, "Missing required field: text", http.StatusBadRequest)
		return
	}

	answer, err := s.proof.Check(r.Context(), req.Text, nil)

	var quotaErr *models.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		s.writeErrorResponse(w, quotaErr.Reason, http.StatusTooManyRequests)
		return
	case errors.Is(err, models.ErrFeatureUnavailable):
		s.writeErrorResponse(w, "Proof checks are not configured", http.StatusServiceUnavailable)
		return
	case errors.Is(err, models.ErrTextTooShort):
		s.writeErrorResponse(w, fmt.Sprintf("Text is too short (minimum %d characters)", s.proof.MinLength()), http.StatusBadRequest)
		return
	case err != nil:
		s.logger.Error("Proof check failed", zap.Error(err))
		s.writeErrorResponse(w, "Proof check failed", http.StatusInternalServerError)
		return
	}

	s.writeResponse(w, &ProofResponse{
		Success: true,
		Answer:  answer,
	})
}

// handleQuota handles GET /quota
func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	usage := s.quota.Usage(r.Context())

	s.writeResponse(w, &QuotaResponse{
		Success:   true,
		Date:      usage.Date,
		Count:     usage.Count,
		Limit:     s.quotaLimit,
		Remaining: max(s.quotaLimit-usage.Count, 0),
	})
}

func displayName(r *http.Request, subject string) string {
	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		return name
	}
	return subject
}
