package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/energywise/energywise/pkg/catalog"
	"github.com/energywise/energywise/pkg/log"
	"github.com/energywise/energywise/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// contextSource provides the weather and grid carbon data that annotate
// results. A nil half means the data is unavailable.
type contextSource interface {
	Resolve(ctx context.Context, city, zone string) (*types.WeatherContext, *types.CarbonContext)
	Carbon(ctx context.Context, zone string) *types.CarbonContext
}

// Server handles the HTTP API for the EnergyWise estimator.
// It serves calculations over the plan and appliance catalog.
type Server struct {
	loader   *catalog.Loader
	catalog  *catalog.Catalog
	external contextSource

	offPeak    types.TimePeriod
	listenAddr string
	httpServer *http.Server
	serverName string
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(loader *catalog.Loader, external contextSource) *Server {
	srv := &Server{
		loader:     loader,
		external:   external,
		offPeak:    types.DefaultOffPeakPeriod,
		serverName: "energywise",
	}
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	offPeak := lflag.String("off-peak-hours", "21-7", "Daily off-peak window as start-end hours, wrapping midnight when start > end")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		p, err := parsePeriod(*offPeak)
		if err != nil {
			panic(fmt.Sprintf("invalid off-peak-hours: %v", err))
		}
		srv.offPeak = p
	})

	return srv
}

// parsePeriod parses "start-end" hours such as "21-7".
func parsePeriod(s string) (types.TimePeriod, error) {
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return types.TimePeriod{}, fmt.Errorf("expected start-end, got %q", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return types.TimePeriod{}, fmt.Errorf("invalid start hour: %w", err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return types.TimePeriod{}, fmt.Errorf("invalid end hour: %w", err)
	}
	p := types.TimePeriod{HourStart: start, HourEnd: end, Description: "Off-Peak"}
	if err := p.Validate(); err != nil {
		return types.TimePeriod{}, err
	}
	return p, nil
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/appliances", s.handleListAppliances)
	apiMux.HandleFunc("GET /api/plans", s.handleListPlans)
	apiMux.HandleFunc("GET /api/plans/compare", s.handleComparePlans)
	apiMux.HandleFunc("GET /api/plans/{id}/outlook", s.handlePlanOutlook)
	apiMux.HandleFunc("POST /api/calculate", s.handleCalculate)
	apiMux.HandleFunc("POST /api/optimize", s.handleOptimize)
	apiMux.HandleFunc("GET /api/carbon/footprint", s.handleCarbonFootprint)
	apiMux.HandleFunc("GET /api/carbon/forecast", s.handleCarbonForecast)
	apiMux.HandleFunc("POST /api/savings/timeshift", s.handleTimeShift)
	apiMux.HandleFunc("POST /api/savings/payback", s.handlePayback)
	apiMux.HandleFunc("GET /api/rates/{state}", s.handleFallbackRate)

	mux := http.NewServeMux()
	mux.Handle("/api/", s.requestIDMiddleware(apiMux))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.revisionMiddleware(gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)))
}

// Run loads the catalog, starts the HTTP server and blocks until the context
// is canceled or an error occurs.
// It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	if s.catalog == nil {
		c, err := s.loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		s.catalog = c
	}

	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	// use a channel to capturing server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		// Context canceled, shut down gracefully
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
}

// writeError maps a calculation error to a status code. Unexpected errors are
// logged and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidInput), errors.Is(err, types.ErrNoApplianceSelected):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, types.ErrUnknownEntity):
		writeJSONError(w, err.Error(), http.StatusNotFound)
	default:
		log.Ctx(r.Context()).ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		log.Ctx(r.Context()).DebugContext(r.Context(), "invalid request body", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// floatParam returns the named query parameter, or nil when it is absent.
// NaN and infinities are rejected.
func floatParam(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a finite number: %w", name, types.ErrInvalidInput)
	}
	return &v, nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}
