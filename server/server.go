// SPDX-License-Identifier: MIT
// Package: server
//
// server.go - HTTP surface over treedata.GenerateTree.
//
// Routes:
//
//	GET  /healthz                              liveness probe
//	GET  /api/v1/tree?seed=N&includeRel=bool   generate from the base config
//	POST /api/v1/tree?seed=N                   generate from a JSON Config body
//	GET  /metrics                              Prometheus exposition
//
// Error mapping:
//   - bad query parameter or body, ErrValidation → 400
//   - ErrDegenerateGroup                        → 422
//   - anything else                             → 500
//
// Every successful response is an export.Document encoded as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chwzr/ag-grid-treedata/export"
	"github.com/chwzr/ag-grid-treedata/metrics"
	"github.com/chwzr/ag-grid-treedata/treedata"
)

const shutdownTimeout = 5 * time.Second

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}
	return func(s *Server) { s.logger = l }
}

// WithRegistry registers the generation metrics on reg and serves them from
// /metrics. Panics if reg is nil.
func WithRegistry(reg *prometheus.Registry) Option {
	if reg == nil {
		panic("server: WithRegistry(nil)")
	}
	return func(s *Server) { s.registry = reg }
}

// Server serves generated datasets over HTTP.
type Server struct {
	base     treedata.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
	router   *gin.Engine
}

// New builds a Server whose GET endpoint generates from base.
// base is not validated here; an invalid base surfaces as 400 per request.
func New(base treedata.Config, opts ...Option) *Server {
	s := &Server{
		base:   base,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.recorder = metrics.New(s.registry)
	s.router = s.routes()

	return s
}

// Handler returns the router; useful with httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/api/v1")
	v1.GET("/tree", s.handleGetTree)
	v1.POST("/tree", s.handlePostTree)

	return r
}

func (s *Server) handleGetTree(c *gin.Context) {
	cfg := s.base
	if raw := c.Query("includeRel"); raw != "" {
		rel, err := strconv.ParseBool(raw)
		if err != nil {
			s.badRequest(c, "includeRel", err)
			return
		}
		cfg.IncludeRel = rel
	}

	s.generate(c, cfg)
}

func (s *Server) handlePostTree(c *gin.Context) {
	cfg, err := decodeConfig(c.Request.Body)
	if err != nil {
		s.badRequest(c, "body", err)
		return
	}

	s.generate(c, cfg)
}

// decodeConfig reads one JSON Config over DefaultConfig. Unknown keys are
// rejected, matching config.Parse for YAML files.
func decodeConfig(r io.Reader) (treedata.Config, error) {
	cfg := treedata.DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return treedata.Config{}, err
	}
	if dec.More() {
		return treedata.Config{}, errors.New("body holds more than one JSON value")
	}

	return cfg, nil
}

func (s *Server) generate(c *gin.Context, cfg treedata.Config) {
	opts := []treedata.Option{
		treedata.WithObserver(s.recorder),
		treedata.WithLogger(s.logger),
	}

	var seed *int64
	if raw := c.Query("seed"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.badRequest(c, "seed", err)
			return
		}
		seed = &n
		opts = append(opts, treedata.WithSeed(n))
	}

	entries, err := treedata.GenerateTree(cfg, opts...)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, export.NewDocument(cfg, entries, seed))
}

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) badRequest(c *gin.Context, field string, err error) {
	c.JSON(http.StatusBadRequest, errorBody{Error: err.Error(), Field: field})
}

func (s *Server) writeError(c *gin.Context, err error) {
	body := errorBody{Error: err.Error()}

	var ve *treedata.ValidationError
	switch {
	case errors.As(err, &ve):
		body.Field = ve.Field
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, treedata.ErrDegenerateGroup):
		c.JSON(http.StatusUnprocessableEntity, body)
	default:
		s.logger.Error("generation failed", "err", err)
		c.JSON(http.StatusInternalServerError, body)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
