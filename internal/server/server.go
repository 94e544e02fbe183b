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

	"github.com/osse101/WashRewards_Go/internal/handler"
	"github.com/osse101/WashRewards_Go/internal/logger"
	"github.com/osse101/WashRewards_Go/internal/loyalty"
	"github.com/osse101/WashRewards_Go/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port              int
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxRequestBytes   int64

	// Readiness checks run by /readyz
	Checkers []handler.HealthChecker
}

type Server struct {
	httpServer     *http.Server
	loyaltyService loyalty.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, loyaltyService loyalty.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, loyaltyService),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		loyaltyService: loyaltyService,
	}
}

// NewRouter builds the routing tree and middleware stack
func NewRouter(opts Options, loyaltyService loyalty.Service) http.Handler {
	maxBytes := opts.MaxRequestBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestBytes
	}

	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimitRequests, opts.RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Checkers...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	loyaltyHandler := handler.NewLoyaltyHandler(loyaltyService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tiers", loyaltyHandler.HandleGetTiers)
		r.Get("/tiers/{id}", loyaltyHandler.HandleGetTier)

		r.Post("/loyalty/summary", loyaltyHandler.HandleSummary)
		r.Post("/points/wash", loyaltyHandler.HandleWashPoints)
		r.Post("/redemption/check", loyaltyHandler.HandleCheckRedemption)

		r.Route("/badges", func(r chi.Router) {
			r.Post("/evaluate", loyaltyHandler.HandleEvaluateBadges)
			r.Post("/condition", loyaltyHandler.HandleEvaluateCondition)
		})

		r.Post("/offers", loyaltyHandler.HandleOffers)

		r.Route("/referral", func(r chi.Router) {
			r.Get("/code", loyaltyHandler.HandleReferralCode)
			r.Get("/rewards", loyaltyHandler.HandleReferralRewards)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honour an upstream request id, otherwise mint one
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
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
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
