package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"amigofiel/internal/logger"
)

type Server struct {
	srv *http.Server
	log logger.Logger
}

func NewServer(handler http.Handler, addr string, log logger.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start serves until ctx is done, then shuts down with a 5s grace period.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http: starting stub endpoint", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("http: server shutdown error", "error", err)
			return err
		}
		s.log.Info("http: stub endpoint stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
