// Package server exposes the lexer over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wordlexer/internal/analysis"
	"wordlexer/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server wires the gin router to an http.Server.
type Server struct {
	cfg    config.ServerConfig
	router *gin.Engine
	logger *zap.Logger
}

// New builds a Server serving the API, /metrics and request logging.
func New(cfg *config.Config, registry *analysis.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := NewMetrics()
	handler := NewHandler(registry, cfg.Lexer, metrics, logger)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	handler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		cfg:    cfg.Server,
		router: router,
		logger: logger,
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
