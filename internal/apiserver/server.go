package apiserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"montage/internal/logging"
	"montage/internal/session"
)

// Server wraps the HTTP listener for one open session.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds a server bound to addr, serving the session's API.
func NewServer(addr string, sess *session.Session, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(sess),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logging.WithComponent(logger, "apiserver"),
	}
}

// Start blocks serving requests until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", slog.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured bind address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
