package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/server"
)

// ServeCmd runs the websocket ranking service
type ServeCmd struct {
	Addr     string `kong:"help='Listen address (overrides config)'"`
	MaxHands int    `kong:"help='Maximum hands per request (overrides config)'"`
}

func (c *ServeCmd) Run(a *app) error {
	addr := a.cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}
	maxHands := a.cfg.Server.MaxHands
	if c.MaxHands > 0 {
		maxHands = c.MaxHands
	}

	srv := server.NewServer(a.logger, quartz.NewReal(), server.Config{
		MaxHands:     maxHands,
		Workers:      a.cfg.Engine.Workers,
		PingInterval: a.cfg.Server.PingInterval(),
	})

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
