package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/widget"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch DATE",
		Short: "Follow live reservation updates for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if _, err := time.Parse(widget.DateLayout, date); err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}
			client, _, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			stop, err := client.StreamReservations(ctx, date, func(list []api.Reservation) {
				fmt.Printf("-- %s (%d reservations)\n", time.Now().Format("15:04:05"), len(list))
				for _, r := range list {
					fmt.Printf("   %s  %-24s %d seats  %s\n", r.Time, r.FullName, r.Seats, r.Status)
				}
			})
			if err != nil {
				return err
			}
			defer stop()

			fmt.Printf("watching %s, press Ctrl-C to stop\n", date)
			<-ctx.Done()
			return nil
		},
	}
}
