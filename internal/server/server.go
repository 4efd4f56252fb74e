// Package server exposes launcher backups over HTTP: upload a backup, inspect
// it, move or remove items, and download it again as canonical EXML or as an
// export snapshot.
//
// Routes
//
//	GET    /health
//	POST   /api/documents?name=      upload a backup (raw EXML body)
//	GET    /api/documents            list stored documents
//	GET    /api/documents/:id        summary
//	DELETE /api/documents/:id
//	GET    /api/documents/:id/exml   canonical encoding
//	GET    /api/documents/:id/export?format=json|yaml|msgpack
//	GET    /api/documents/:id/find?package=
//	GET    /api/documents/:id/digest
//	POST   /api/documents/:id/move   {"region", "fromPage", "fromIndex", "toPage", "toIndex"}
//	POST   /api/documents/:id/remove {"region", "page", "packageName", "className"}
//
// Documents live in memory only and are lost on restart.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/KimNorgaard/go-exml"
)

// Server is the HTTP front end for a Store.
type Server struct {
	cfg    Config
	logger *slog.Logger
	store  *Store
	echo   *echo.Echo
}

// New returns a server with its routes registered. A nil logger discards
// output.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		store:  NewStore(cfg.MaxDocuments),
		echo:   echo.New(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = errorHandler

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.Any("err", v.Error))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	s.echo.Use(middleware.Recover())
	if cfg.BodyLimit != "" {
		s.echo.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/health", s.handleHealth)

	docs := s.echo.Group("/api/documents")
	docs.POST("", s.handleUpload)
	docs.GET("", s.handleList)
	docs.GET("/:id", s.handleGet)
	docs.DELETE("/:id", s.handleDelete)
	docs.GET("/:id/exml", s.handleEncode)
	docs.GET("/:id/export", s.handleExport)
	docs.GET("/:id/find", s.handleFind)
	docs.GET("/:id/digest", s.handleDigest)
	docs.POST("/:id/move", s.handleMove)
	docs.POST("/:id/remove", s.handleRemove)
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Store returns the server's document store.
func (s *Server) Store() *Store {
	return s.store
}

// Run listens on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- s.echo.Start(s.cfg.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) decodeOptions() []exml.Option {
	opts := []exml.Option{exml.Logger(s.logger)}
	if s.cfg.Strict {
		opts = append(opts, exml.StrictValues(), exml.DisallowUnknownKinds())
	}
	return opts
}
