// Package rest exposes the corpdesk services over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/corpdesk/internal/logging"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	address        string
	logger         logging.Logger
	auth           AuthService
	users          UserService
	directory      DirectoryService
	jwtSecret      []byte
	allowedOrigins []string
	now            func() time.Time
}

func NewHTTPServer(a string, l logging.Logger, as AuthService, us UserService, ds DirectoryService, secretKey string, origins []string) *HTTPServer {
	return &HTTPServer{
		address:        a,
		logger:         l.With("module", "http_server"),
		auth:           as,
		users:          us,
		directory:      ds,
		jwtSecret:      []byte(secretKey),
		allowedOrigins: origins,
		now:            time.Now,
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
