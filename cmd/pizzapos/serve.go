package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Fmfizzy/PizzaPOS/pos"
	"github.com/Fmfizzy/PizzaPOS/terminal"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the terminal gRPC service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	term := a.newTerminal()
	svc := terminal.NewService(term, a.logger.Named("service"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := term.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// The service starts without a menu if the backend is down; cashiers
		// can refresh later.
		if err := term.Refresh(gctx); err != nil {
			a.logger.Warn("initial refresh failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		return pos.RunServer(gctx, pos.ServerConfig{Name: "pizzapos-terminal", Port: a.cfg.Port}, a.logger, svc.Register)
	})
	return g.Wait()
}
