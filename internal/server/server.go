// Package server exposes the checklist pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ukaji3/gradcheck-go/internal/config"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/render"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/rules"
)

// Options configures a Server.
type Options struct {
	// MaxUploadBytes limits request bodies. Zero means no limit.
	MaxUploadBytes int64
	// Rules is applied to every parse. Nil parses without rules.
	Rules    *rules.Config
	Exporter render.Exporter
	Logger   *zerolog.Logger
	// Now is the clock used for timestamps. If nil, time.Now is used.
	Now func() time.Time
}

// Server serves the parse and export endpoints.
type Server struct {
	engine    *gin.Engine
	rules     *rules.Config
	exporter  render.Exporter
	log       *zerolog.Logger
	maxUpload int64
	now       func() time.Time
}

// New creates a Server with all routes and middleware.
func New(opts Options) *Server {
	s := &Server{
		engine:    gin.New(),
		rules:     opts.Rules,
		exporter:  opts.Exporter,
		log:       opts.Logger,
		maxUpload: opts.MaxUploadBytes,
		now:       opts.Now,
	}
	if s.log == nil {
		nop := zerolog.Nop()
		s.log = &nop
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(RequestID())
	s.engine.Use(Logger(s.log))

	s.engine.GET("/health", s.health)
	s.engine.POST("/parse", s.parse)
	s.engine.POST("/export/:format", s.export)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Port until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      s.engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", cfg.Port).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
