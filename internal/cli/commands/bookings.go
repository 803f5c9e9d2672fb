package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var bookingColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("CUSTOMER", "customer.name"),
	render.Col("VENUE", "courtBookings.0.court.venue.name"),
	render.Col("COURT", "courtBookings.0.court.name"),
	render.Col("DATE", "bookingDate"),
	render.Col("START", "startTime"),
	render.Col("END", "endTime"),
	render.Col("AMOUNT", "totalAmount"),
	render.Col("STATUS", "status"),
}

var bookingFields = []render.Column{
	render.Col("ID", "id"),
	render.Col("Customer", "customer.name"),
	render.Col("Customer email", "customer.email"),
	render.Col("Venue", "courtBookings.0.court.venue.name"),
	render.Col("Court", "courtBookings.0.court.name"),
	render.Col("Date", "bookingDate"),
	render.Col("Start", "startTime"),
	render.Col("End", "endTime"),
	render.Col("Duration (h)", "duration"),
	render.Col("Amount", "totalAmount"),
	render.Col("Status", "status"),
	render.Col("Created", "createdAt"),
}

type bookingListInput struct {
	listFlags
	Status string `flag:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	From   string `flag:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `flag:"to" validate:"omitempty,datetime=2006-01-02"`
}

type cancelInput struct {
	Reason string `flag:"reason" validate:"required"`
}

// NewBookingsCmd creates the bookings command
func NewBookingsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect and cancel bookings",
	}

	cmd.AddCommand(newBookingsListCmd(open))
	cmd.AddCommand(idCommand(open, "get", "Show one booking", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.GetBooking(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch booking %d: %w", id, err)
		}
		return env.Render.Record(data, bookingFields)
	}))
	cmd.AddCommand(newBookingCancelCmd(open))
	cmd.AddCommand(rawCommand(open, "analytics", "Show booking analytics", "failed to load booking analytics", (*client.Client).GetBookingAnalytics))

	return cmd
}

func newBookingsListCmd(open Opener) *cobra.Command {
	var input bookingListInput
	var customerID, venueID int64

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bookings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			filters := client.BookingFilters{
				Page:     client.Ptr(input.Page),
				Size:     client.Ptr(input.Size),
				Status:   optString(cmd, "status"),
				DateFrom: optString(cmd, "from"),
				DateTo:   optString(cmd, "to"),
			}
			if cmd.Flags().Changed("customer") {
				filters.CustomerID = client.Ptr(customerID)
			}
			if cmd.Flags().Changed("venue") {
				filters.VenueID = client.Ptr(venueID)
			}

			data, err := env.Client.GetBookings(cmd.Context(), filters)
			if err != nil {
				return fmt.Errorf("failed to fetch bookings: %w", err)
			}
			return env.Render.List(data, bookingColumns, "No bookings found.")
		},
	}

	input.register(cmd)
	cmd.Flags().StringVar(&input.Status, "status", "", "Filter by status (PENDING, CONFIRMED, CANCELLED, COMPLETED)")
	cmd.Flags().StringVar(&input.From, "from", "", "Bookings on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.To, "to", "", "Bookings on or before this date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&customerID, "customer", 0, "Filter by customer ID")
	cmd.Flags().Int64Var(&venueID, "venue", 0, "Filter by venue ID")

	return cmd
}

func newBookingCancelCmd(open Opener) *cobra.Command {
	var input cancelInput

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.CancelBooking(cmd.Context(), id, input.Reason)
			if err != nil {
				return fmt.Errorf("failed to cancel booking: %w", err)
			}
			return env.Render.Result(data, fmt.Sprintf("✓ Booking %d cancelled", id))
		},
	}

	cmd.Flags().StringVar(&input.Reason, "reason", "", "Reason for cancellation (required)")

	return cmd
}
