package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/logger"
)

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer builds the HTTP server for the slitting service. The write
// timeout leaves room for streaming XLSX and PDF exports of large pattern
// sets; request-level deadlines are handled by the timeout middleware.
func NewServer(handler http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + port,
			Handler:        handler,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		shutdownTimeout: 10 * time.Second,
	}
}

// Run starts the server and blocks until a shutdown signal arrives or
// ListenAndServe fails.
func (s *Server) Run() error {
	errChan := make(chan error, 1)

	go func() {
		logger.Logger().Info().Str("addr", s.httpServer.Addr).Msg("Slitting service listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		logger.Logger().Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests, bounded by the shutdown timeout so a
// stuck export cannot hold the process open.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Logger().Error().Err(err).Msg("Server forced to shut down")
		return err
	}

	logger.Logger().Info().Msg("Server stopped gracefully")
	return nil
}
