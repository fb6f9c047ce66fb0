package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/availability"
	"github.com/fermento-pizzeria/fermento/internal/config"
	"github.com/fermento-pizzeria/fermento/internal/logger"
	"github.com/fermento-pizzeria/fermento/internal/shifts"
	"github.com/fermento-pizzeria/fermento/internal/status"
	"github.com/fermento-pizzeria/fermento/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var initShifts bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pizzeria website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			log := logger.New(os.Stderr, cfg.Env.IsProduction, cfg.LogLevel)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			client := api.New(cfg.Env.APIURL, log)

			if initShifts {
				shifts.EnsureInitialized(ctx, client, time.Now(), shifts.DefaultWindowDays, log)
			}

			monitor := status.NewMonitor(client, cfg.StatusPollInterval, log)
			go func() { _ = monitor.Run(ctx) }()

			ws := &web.Server{
				API:      client,
				Monitor:  monitor,
				Resolver: availability.NewResolver(client, log),
				Sessions: web.NewSessionManager(cfg.CookieHashKey, cfg.CookieBlockKey),
				Cfg:      cfg,
				Log:      log,
			}
			return web.Start(ctx, cfg.ListenAddr, ws.Routes(), log)
		},
	}

	cmd.Flags().BoolVar(&initShifts, "init-shifts", false, "ensure the next 30 days of shifts exist on startup")
	return cmd
}
