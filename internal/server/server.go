package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"aquarium-catalog/internal/platform/logger"
)

// ShutdownTimeout es lo que se espera a los requests en curso al apagar.
const ShutdownTimeout = 10 * time.Second

type Options struct {
	Addr         string
	Handler      http.Handler
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Log          logger.Logger
}

type Server struct {
	srv *http.Server
	log logger.Logger
}

func New(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		srv: &http.Server{
			Addr:              opts.Addr,
			Handler:           opts.Handler,
			ReadHeaderTimeout: opts.ReadTimeout,
			ReadTimeout:       opts.ReadTimeout,
			WriteTimeout:      opts.WriteTimeout,
		},
		log: log,
	}
}

// Run escucha en Addr y sirve hasta que ctx se cancela.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve sirve sobre ln; al cancelar ctx hace shutdown ordenado.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("starting server", map[string]any{"addr": ln.Addr().String()})
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		s.log.Info("shutting down server", nil)
		if err := s.srv.Shutdown(shCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
