package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

type analyticsReport struct {
	Users    json.RawMessage `json:"users"`
	Venues   json.RawMessage `json:"venues"`
	Bookings json.RawMessage `json:"bookings"`
}

// NewAnalyticsCmd creates the analytics command
func NewAnalyticsCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show user, venue and booking analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}
			return runAnalytics(cmd, env)
		},
	}
}

// runAnalytics loads the three reports together; any failure fails the page
func runAnalytics(cmd *cobra.Command, env *Env) error {
	var report analyticsReport

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() (err error) {
		report.Users, err = env.Client.GetUserAnalytics(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.Venues, err = env.Client.GetVenueAnalytics(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.Bookings, err = env.Client.GetBookingAnalytics(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch analytics: %w", err)
	}

	if env.Render.Format() != render.FormatTable {
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		return env.Render.Raw(data)
	}

	for _, section := range []struct {
		title string
		data  json.RawMessage
	}{
		{"User analytics", report.Users},
		{"Venue analytics", report.Venues},
		{"Booking analytics", report.Bookings},
	} {
		env.Render.Section(section.title)
		if err := env.Render.Raw(section.data); err != nil {
			return err
		}
	}
	return nil
}
