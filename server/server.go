package server

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Server はヘルスチェック用のHTTPサーバーです。
type Server struct {
	HTTP *http.Server
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		HTTP: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Serve はShutdownされるまでブロックします。Shutdownによる終了はnilを返します。
func (s *Server) Serve() error {
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error { return s.HTTP.Shutdown(ctx) }
func (s *Server) Close() error                       { return s.HTTP.Close() }
func (s *Server) Addr() string                       { return s.HTTP.Addr }
