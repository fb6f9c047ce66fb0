package cmd

import (
	"fmt"
	"os"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/config"
	"github.com/fermento-pizzeria/fermento/internal/logger"
	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity to the reservation backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			log := logger.New(os.Stderr, cfg.Env.IsProduction, cfg.LogLevel)
			client := api.New(cfg.Env.APIURL, log)

			if err := client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}
			fmt.Printf("✅ %s is reachable\n", cfg.Env.APIURL)
			return nil
		},
	}
}
