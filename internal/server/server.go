// Package server exposes the calculator registry over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// RequestIDHeader carries the per-request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

type handler struct {
	logger         *zap.Logger
	registry       *calculator.Registry
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, registry *calculator.Registry, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = calculator.NewRegistry(logger)
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, registry: registry, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculators", h.handleList)
	mux.HandleFunc("/api/calculators/{name}", h.handleCalculator)
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.withRequestID(mux)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

		h.logger.Info("request handled",
			zap.String("op", "server.request"),
			zap.String("requestId", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

type calculatorSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type listResponse struct {
	Calculators []calculatorSummary `json:"calculators"`
	Categories  []string            `json:"categories"`
}

type computeRequest struct {
	Inputs map[string]interface{} `json:"inputs"`
}

type errorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
	RequestID   string   `json:"requestId,omitempty"`
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (h *handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	calculators := h.registry.List(r.URL.Query().Get("category"))
	response := listResponse{
		Calculators: make([]calculatorSummary, 0, len(calculators)),
		Categories:  h.registry.Categories(),
	}
	for _, c := range calculators {
		response.Calculators = append(response.Calculators, calculatorSummary{
			Name:        c.Name,
			Title:       c.Title,
			Category:    c.Category,
			Description: c.Description,
		})
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleCalculator(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleSchema(w, r)
	case http.MethodPost:
		h.handleCompute(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *handler) handleSchema(w http.ResponseWriter, r *http.Request) {
	c, err := h.registry.Lookup(r.PathValue("name"))
	if err != nil {
		h.respondLookupError(w, r, err, "server.handleSchema")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompute"
	name := r.PathValue("name")
	if _, err := h.registry.Lookup(name); err != nil {
		h.respondLookupError(w, r, err, op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	var payload computeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	raw, err := stringInputs(payload.Inputs)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	result, err := h.registry.Compute(name, raw)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.logger.Debug("calculator computed",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.String("calculator", result.Calculator),
	)
	h.writeJSON(w, http.StatusOK, result)
}

// stringInputs turns JSON input values into the strings the registry parses.
// Numbers, strings, booleans and null are accepted.
func stringInputs(inputs map[string]interface{}) (map[string]string, error) {
	raw := make(map[string]string, len(inputs))
	for key, value := range inputs {
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("input %s: expected a number or string", key)
		}
		raw[key] = s
	}
	return raw, nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondLookupError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var unknown *calculator.UnknownCalculatorError
	if !errors.As(err, &unknown) {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}
	h.logger.Warn("unknown calculator requested",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.String("calculator", unknown.Name),
		zap.Strings("suggestions", unknown.Suggestions),
	)
	h.writeJSON(w, http.StatusNotFound, errorResponse{
		Error:       err.Error(),
		Suggestions: unknown.Suggestions,
		RequestID:   requestID(r),
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r)})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.logger.Error("failed to write JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}

// Serve listens on cfg.Address until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, handler http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "server.Serve"),
			zap.String("address", listener.Addr().String()),
		)
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()
	logger.Info("server shutting down", zap.String("op", "server.Serve"))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
