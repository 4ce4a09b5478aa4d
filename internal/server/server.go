// Package server exposes the proration engine over HTTP using fasthttp.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/caportal/prorate-calculator/internal/calculation"
	"github.com/caportal/prorate-calculator/internal/config"
	applog "github.com/caportal/prorate-calculator/internal/log"
	"github.com/caportal/prorate-calculator/internal/metrics"
)

// Routes served by Handler.
const (
	RouteProrate       = "/api/v1/prorate"
	RouteBatch         = "/api/v1/batch"
	RouteLinks         = "/api/v1/links"
	RouteMicrolearning = "/api/v1/microlearning"
	RouteHealth        = "/healthz"
	RouteMetrics       = "/metrics"
)

// Server wires the engine, metrics and logging into a fasthttp handler.
type Server struct {
	engine  *calculation.ProrationEngine
	metrics *metrics.Metrics
	logger  *applog.Logger
	cfg     config.AppConfig
	parser  *config.InputParser

	metricsHandler fasthttp.RequestHandler
}

// New creates a server. A nil metrics disables /metrics.
func New(cfg config.AppConfig, engine *calculation.ProrationEngine, m *metrics.Metrics, logger *applog.Logger) *Server {
	s := &Server{
		engine:  engine,
		metrics: m,
		logger:  logger.WithComponent(applog.ComponentHTTP),
		cfg:     cfg,
		parser:  config.NewInputParser(),
	}
	if m != nil {
		s.metricsHandler = fasthttpadaptor.NewFastHTTPHandler(m.Handler())
	}
	return s
}

// Handler returns the routed handler with request logging and metrics.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		route := s.route(ctx)

		elapsed := time.Since(start)
		status := ctx.Response.StatusCode()
		s.metrics.ObserveRequest(route, status, elapsed)
		s.logger.Info("request served",
			applog.FieldMethod, string(ctx.Method()),
			applog.FieldPath, string(ctx.Path()),
			applog.FieldStatusCode, status,
			applog.FieldDuration, elapsed.Milliseconds(),
		)
	}
}

// route dispatches the request and returns the route label used for metrics.
func (s *Server) route(ctx *fasthttp.RequestCtx) string {
	path := string(ctx.Path())
	switch path {
	case RouteProrate:
		switch {
		case ctx.IsPost():
			s.handleProratePost(ctx)
		case ctx.IsGet():
			s.handleProrateGet(ctx)
		default:
			methodNotAllowed(ctx, "GET, POST")
		}
	case RouteBatch:
		if !ctx.IsPost() {
			methodNotAllowed(ctx, "POST")
			break
		}
		s.handleBatch(ctx)
	case RouteLinks:
		if !ctx.IsGet() {
			methodNotAllowed(ctx, "GET")
			break
		}
		s.handleLinks(ctx)
	case RouteMicrolearning:
		if !ctx.IsGet() {
			methodNotAllowed(ctx, "GET")
			break
		}
		s.handleMicrolearning(ctx)
	case RouteHealth:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case RouteMetrics:
		if s.metricsHandler == nil {
			writeError(ctx, fasthttp.StatusNotFound, "NotFound", "metrics are disabled")
			break
		}
		s.metricsHandler(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "NotFound", "no route for "+path)
		return "other"
	}
	return path
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "prorate-calculator",
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", applog.FieldAddr, s.cfg.Addr())
		errCh <- srv.ListenAndServe(s.cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
