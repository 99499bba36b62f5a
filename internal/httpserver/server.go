package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/proof"
	"go-psi-bot/internal/stats"
)

const unixSocketPrefix = "unix:"

// Server exposes the stats, proof and quota operations over HTTP next to
// health and Prometheus endpoints
type Server struct {
	stats      *stats.Service
	proof      *proof.Service
	quota      interfaces.QuotaGuard
	quotaLimit int
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a new HTTP server
func NewServer(statsService *stats.Service, proofService *proof.Service, quota interfaces.QuotaGuard, quotaLimit int, logger *zap.Logger) *Server {
	return &Server{
		stats:      statsService,
		proof:      proofService,
		quota:      quota,
		quotaLimit: quotaLimit,
		logger:     logger,
	}
}

// Start listens on listenAddr, a host:port or "unix:/path/to.sock", and
// serves until Stop. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start(listenAddr string) error {
	if path, ok := strings.CutPrefix(listenAddr, unixSocketPrefix); ok {
		return s.StartUnixSocket(path)
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	s.logger.Info("Starting HTTP server", zap.String("address", listener.Addr().String()))
	return s.serve(listener)
}

// StartUnixSocket starts the HTTP server on a Unix socket
func (s *Server) StartUnixSocket(socketPath string) error {
	// Remove existing socket file
	if err := os.RemoveAll(socketPath); err != nil {
		s.logger.Warn("Failed to remove existing socket file", zap.String("path", socketPath), zap.Error(err))
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return err
	}

	if err := os.Chmod(socketPath, 0660); err != nil {
		s.logger.Warn("Failed to set socket permissions", zap.String("path", socketPath), zap.Error(err))
	}

	s.logger.Info("Starting HTTP server on Unix socket", zap.String("socket_path", socketPath))
	return s.serve(listener)
}

func (s *Server) serve(listener net.Listener) error {
	s.server = &http.Server{
		Handler:      s.createRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // proof checks wait on search and summarization
		IdleTimeout:  60 * time.Second,
	}
	return s.server.Serve(listener)
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// createRouter creates and configures the HTTP router
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()

	// Stats endpoints
	router.HandleFunc("/stats/{subject}", s.handleProfile).Methods("GET")
	router.HandleFunc("/stats/{subject}/{kind}", s.handleReading).Methods("GET")
	router.HandleFunc("/whoami/{subject}", s.handleWhoAmI).Methods("GET")

	// Proof and quota
	router.HandleFunc("/proof", s.handleProof).Methods("POST")
	router.HandleFunc("/quota", s.handleQuota).Methods("GET")

	// Health check
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status":          "healthy",
		"time":            time.Now().UTC(),
		"proof_available": s.proof.Available(),
	})
}

// parseRequest parses JSON request body
func (s *Server) parseRequest(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return err
	}
	defer r.Body.Close()

	return json.Unmarshal(body, v)
}

// writeResponse writes JSON response
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("Failed to write error response", zap.Error(err))
	}
}
