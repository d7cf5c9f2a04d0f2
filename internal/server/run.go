package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/lostfound-tw/lostfound/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// Run loads the collection, then serves on addr until ctx is cancelled or
// SIGINT/SIGTERM arrives. A positive interval refreshes the collection
// periodically.
func (s *Server) Run(ctx context.Context, addr string, interval time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.refreshLoop(gCtx, interval)
		return nil
	})

	g.Go(func() error {
		s.log.Info("Starting HTTP server", logger.Fields{"address": addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			s.log.Info("Received shutdown signal", logger.Fields{"signal": sig.String()})
		case <-gCtx.Done():
			s.log.Info("Context cancelled, initiating shutdown", nil)
		}
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error("HTTP server shutdown error", nil, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Server error", nil, err)
		return err
	}

	s.log.Info("Server stopped", nil)
	return nil
}

func (s *Server) refreshLoop(ctx context.Context, interval time.Duration) {
	s.refreshOnce(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshOnce(ctx)
		}
	}
}

func (s *Server) refreshOnce(ctx context.Context) {
	if err := s.store.Refresh(ctx, s.load); err != nil {
		if ctx.Err() == nil {
			s.log.Error("Loading records failed", nil, err)
		}
		return
	}
	s.log.Info("Loaded records", logger.Fields{"records": len(s.store.Records())})
}
