package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/config"
	"github.com/fermento-pizzeria/fermento/internal/logger"
	"github.com/fermento-pizzeria/fermento/internal/shifts"
	"github.com/fermento-pizzeria/fermento/internal/widget"
	"github.com/spf13/cobra"
)

func newShiftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "Inspect and initialize dinner shifts",
	}
	cmd.AddCommand(newShiftsInitCmd())
	cmd.AddCommand(newShiftsListCmd())
	cmd.AddCommand(newShiftsStatsCmd())
	return cmd
}

func newShiftsInitCmd() *cobra.Command {
	var days int

	c := &cobra.Command{
		Use:   "init",
		Short: "Ensure upcoming dates have their shift grid created",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}
			report := shifts.EnsureInitialized(cmd.Context(), client, time.Now(), days, log)
			fmt.Printf("created=%d skipped=%d failed=%d\n", report.Created, report.Skipped, report.Failed)
			return nil
		},
	}
	c.Flags().IntVar(&days, "days", shifts.DefaultWindowDays, "how many days ahead to initialize")
	return c
}

func newShiftsListCmd() *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "list",
		Short: "List shifts for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, err := newClient()
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format(widget.DateLayout)
			}
			list, err := client.ShiftsForDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Printf("no shifts for %s; slot grid is:\n", date)
				for _, t := range shifts.AvailableTimesOrDefault(cmd.Context(), client, log) {
					fmt.Println("  " + t)
				}
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tENABLED\tCAPACITY")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%t\t%d\n", s.Time, s.Enabled, s.MaxReservations)
			}
			return w.Flush()
		},
	}
	c.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")
	return c
}

func newShiftsStatsCmd() *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "stats",
		Short: "Show reservation stats for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().Format(widget.DateLayout)
			}
			stats, err := client.StatsForDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d reservations, %d seats (pending=%d accepted=%d rejected=%d)\n",
				stats.Date, stats.TotalReservations, stats.TotalSeats,
				stats.PendingReservations, stats.AcceptedReservations, stats.RejectedReservations)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tRESERVATIONS\tSEATS\tAVAILABLE")
			for _, s := range stats.ShiftStats {
				fmt.Fprintf(w, "%s\t%d\t%d\t%t\n", s.Time, s.Reservations, s.Seats, s.Available)
			}
			return w.Flush()
		},
	}
	c.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")
	return c
}

func newClient() (*api.Client, *slog.Logger, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(os.Stderr, cfg.Env.IsProduction, cfg.LogLevel)
	return api.New(cfg.Env.APIURL, log), log, nil
}
