package cmd

import (
	"fmt"
	"os"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/availability"
	"github.com/fermento-pizzeria/fermento/internal/config"
	"github.com/fermento-pizzeria/fermento/internal/logger"
	"github.com/fermento-pizzeria/fermento/internal/reservation"
	"github.com/fermento-pizzeria/fermento/internal/widget"
	"github.com/spf13/cobra"
)

func newReserveCmd() *cobra.Command {
	var (
		firstName, lastName string
		phone, email        string
		countryCode         string
		date, timeSlot      string
		seats               int
		specialRequests     string
	)

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Book a table from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			log := logger.New(os.Stderr, cfg.Env.IsProduction, cfg.LogLevel)
			client := api.New(cfg.Env.APIURL, log)
			ctx := cmd.Context()

			form := reservation.NewForm(log)
			form.SetFirstName(firstName)
			form.SetLastName(lastName)
			form.SetCountryCode(countryCode)
			form.SetPhone(widget.SanitizeNumber(phone))
			form.SetEmail(email)
			form.SetDate(date)
			form.SetTime(timeSlot)
			form.SetSeats(seats)
			form.SetSpecialRequests(specialRequests)

			resolver := availability.NewResolver(client, log)
			resolver.Refresh(ctx, date, form.ApplyAvailability)

			form.Submit(ctx, client)

			switch form.Phase() {
			case reservation.PhaseSucceeded:
				r := form.Result()
				fmt.Printf("✅ reserved: %s %s, %s at %s for %d\n",
					r.FirstName, r.LastName, r.Date, r.Time, r.Seats)
				return nil
			case reservation.PhaseFailed:
				return fmt.Errorf("%s", form.FailureMessage())
			default:
				for field, msg := range form.Errors() {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
				}
				return fmt.Errorf("reservation request is not valid")
			}
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "guest first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "guest last name")
	cmd.Flags().StringVar(&countryCode, "country-code", "+39", "phone country code")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&date, "date", "", "reservation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeSlot, "time", "", "reservation time (HH:MM)")
	cmd.Flags().IntVar(&seats, "seats", reservation.MinSeats, "number of seats")
	cmd.Flags().StringVar(&specialRequests, "notes", "", "special requests")
	return cmd
}
