package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/woo"
)

// ProxyServer forwards browser requests to the open data APIs with CORS
// headers, runs Woo analyses server-side and serves the static frontend.
type ProxyServer struct {
	router       *mux.Router
	utrechtBase  string
	overheidBase string
	utrecht      interfaces.UtrechtClient
	connector    *woo.Connector
	httpClient   *http.Client
	logger       *common.Logger
	staticDir    string
}

// NewProxyServer builds the proxy with its routes and middleware chain.
func NewProxyServer(config *common.Config, utrechtClient interfaces.UtrechtClient, connector *woo.Connector, logger *common.Logger) *ProxyServer {
	p := &ProxyServer{
		router:       mux.NewRouter(),
		utrechtBase:  strings.TrimRight(config.Clients.Utrecht.BaseURL, "/"),
		overheidBase: strings.TrimRight(config.Clients.DataOverheid.BaseURL, "/"),
		utrecht:      utrechtClient,
		connector:    connector,
		httpClient: &http.Client{
			Timeout: config.Clients.Utrecht.GetTimeout(),
		},
		logger:    logger,
		staticDir: config.Server.StaticDir,
	}

	p.routes()
	return p
}

func (p *ProxyServer) routes() {
	p.router.Use(recoveryMiddleware(p.logger))
	p.router.Use(corsMiddleware)
	p.router.Use(correlationIDMiddleware)
	p.router.Use(loggingMiddleware(p.logger))

	p.router.PathPrefix("/api/").HandlerFunc(p.handleUtrechtProxy).Methods(http.MethodGet, http.MethodOptions)
	p.router.PathPrefix("/dataoverheid/").HandlerFunc(p.handleDataOverheidProxy).Methods(http.MethodGet, http.MethodOptions)
	p.router.HandleFunc("/woo/analyze/{id}", p.handleWooAnalyze).Methods(http.MethodGet, http.MethodOptions)
	p.router.PathPrefix("/").Handler(http.FileServer(http.Dir(p.staticDir))).Methods(http.MethodGet)
}

// Handler returns the root handler for the HTTP server.
func (p *ProxyServer) Handler() http.Handler {
	return p.router
}

// handleUtrechtProxy forwards /api/* to the Utrecht Open Data API.
func (p *ProxyServer) handleUtrechtProxy(w http.ResponseWriter, r *http.Request) {
	upstream := p.utrechtBase + strings.TrimPrefix(r.URL.Path, "/api")
	if r.URL.RawQuery != "" {
		upstream += "?" + r.URL.RawQuery
	}
	p.forward(w, r, upstream, "Utrecht-OpenData-Proxy/1.0")
}

// handleDataOverheidProxy forwards /dataoverheid/* to the CKAN action API.
func (p *ProxyServer) handleDataOverheidProxy(w http.ResponseWriter, r *http.Request) {
	upstream := p.overheidBase + strings.TrimPrefix(r.URL.Path, "/dataoverheid")
	if r.URL.RawQuery != "" {
		upstream += "?" + r.URL.RawQuery
	}
	p.forward(w, r, upstream, "DataOverheid-Proxy/1.0")
}

// forward relays one GET to an upstream API and copies the response through,
// status code included. CORS headers are already set by the middleware.
func (p *ProxyServer) forward(w http.ResponseWriter, r *http.Request, upstream, userAgent string) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("invalid upstream request: %v", err))
		return
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error().Err(err).Str("upstream", upstream).Msg("Proxy request failed")
		writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("cannot reach API: %v", err))
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		p.logger.Warn().Err(err).Str("upstream", upstream).Msg("Proxy response copy interrupted")
	}
}

// handleWooAnalyze fetches a dataset and returns its Woo analysis as JSON.
func (p *ProxyServer) handleWooAnalyze(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["id"]

	dataset, err := p.utrecht.GetDataset(r.Context(), datasetID)
	if err != nil {
		p.logger.Error().Err(err).Str("dataset", datasetID).Msg("Woo analysis fetch failed")
		writeJSONError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch dataset %s: %v", datasetID, err))
		return
	}

	analysis := p.connector.Analyze(dataset)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(analysis); err != nil {
		p.logger.Warn().Err(err).Str("dataset", datasetID).Msg("Analysis encode failed")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// recoveryMiddleware catches panics and returns 500.
func recoveryMiddleware(logger *common.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Str("panic", fmt.Sprintf("%v", rec)).
						Str("path", r.URL.Path).
						Msg("Panic recovered in HTTP handler")
					writeJSONError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// corsMiddleware adds CORS headers on every response and answers preflight
// requests directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// correlationIDMiddleware extracts or generates a correlation ID.
func correlationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corrID := r.Header.Get("X-Request-ID")
		if corrID == "" {
			corrID = r.Header.Get("X-Correlation-ID")
		}
		if corrID == "" {
			corrID = uuid.New().String()[:8]
		}
		w.Header().Set("X-Correlation-ID", corrID)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(logger *common.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			dur := time.Since(start)
			corrID := w.Header().Get("X-Correlation-ID")

			event := logger.Debug()
			if rw.statusCode >= 500 {
				event = logger.Error()
			} else if rw.statusCode >= 400 {
				event = logger.Info()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", rw.statusCode).
				Int("bytes", rw.bytesWritten).
				Dur("duration", dur).
				Str("correlation_id", corrID).
				Msg("HTTP request")
		})
	}
}
