package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PackSim_Go/internal/collection"
	"github.com/osse101/PackSim_Go/internal/handler"
	"github.com/osse101/PackSim_Go/internal/logger"
	"github.com/osse101/PackSim_Go/internal/metrics"
	"github.com/osse101/PackSim_Go/internal/sse"
)

// Config holds the HTTP surface settings.
type Config struct {
	Port           int
	Variant        string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
}

type Server struct {
	httpServer *http.Server
	limiter    *IPRateLimiter
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc collection.Service, store handler.Pinger, hub *sse.Hub) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	limiter := NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(limiter, cfg.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(cfg.Variant))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/packs/open", handler.HandleOpenPack(svc))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(svc))
			r.Get("/duplicates", handler.HandleGetDuplicates(svc))
			r.Post("/sell", handler.HandleSellItem(svc))
			r.Post("/sell-duplicates", handler.HandleSellDuplicates(svc))
		})

		r.Get("/profile", handler.HandleGetProfile(svc))
		r.Get("/stats", handler.HandleGetStats(svc))
		r.Get("/creatures/{name}", handler.HandleGetCreature(svc))
		r.Get("/catalog", handler.HandleGetCatalog(svc))
		r.Get("/types", handler.HandleGetTypes(svc))

		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
			// No WriteTimeout: the SSE stream is long-lived
		},
		limiter: limiter,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the SSE handler stream through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isOperationalPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.NewRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		ctx = logger.With(ctx, "method", r.Method, "path", r.URL.Path)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) ||
				strings.EqualFold(k, HeaderAuthorization) ||
				strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
