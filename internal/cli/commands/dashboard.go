package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var statsFields = []render.Column{
	render.Col("Total users", "totalUsers"),
	render.Col("Active users", "activeUsers"),
	render.Col("Total venues", "totalVenues"),
	render.Col("Pending venues", "pendingVenues"),
	render.Col("Total bookings", "totalBookings"),
	render.Col("Pending bookings", "pendingBookings"),
	render.Col("Monthly bookings", "monthlyBookings"),
	render.Col("Total revenue", "totalRevenue"),
	render.Col("Monthly revenue", "monthlyRevenue"),
}

type dashboardInput struct {
	Range string `flag:"range" validate:"oneof=week month quarter year"`
}

type dashboardReport struct {
	Stats   json.RawMessage `json:"stats"`
	Revenue json.RawMessage `json:"revenue"`
}

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd(open Opener) *cobra.Command {
	var input dashboardInput

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show platform statistics and revenue",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}
			return runDashboard(cmd, env, client.DateRange(input.Range))
		},
	}

	cmd.Flags().StringVar(&input.Range, "range", string(client.RangeMonth), "Revenue window (week, month, quarter, year)")

	return cmd
}

// runDashboard fetches both panels at once. A failing panel is reported
// without hiding the other one.
func runDashboard(cmd *cobra.Command, env *Env, dateRange client.DateRange) error {
	ctx := cmd.Context()

	var (
		report           dashboardReport
		statsErr, revErr error
		wg               sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		report.Stats, statsErr = env.Client.GetDashboardStats(ctx)
	}()
	go func() {
		defer wg.Done()
		report.Revenue, revErr = env.Client.GetRevenueAnalytics(ctx, dateRange)
	}()
	wg.Wait()

	if statsErr != nil && revErr != nil {
		return fmt.Errorf("failed to fetch dashboard: %w", errors.Join(statsErr, revErr))
	}

	if env.Render.Format() != render.FormatTable {
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		if err := env.Render.Raw(data); err != nil {
			return err
		}
	} else {
		if statsErr == nil {
			env.Render.Section("Platform statistics")
			if err := env.Render.Record(report.Stats, statsFields); err != nil {
				return err
			}
		}
		if revErr == nil {
			env.Render.Section(fmt.Sprintf("Revenue (%s)", dateRange))
			if err := env.Render.Raw(report.Revenue); err != nil {
				return err
			}
		}
	}

	if statsErr != nil {
		return fmt.Errorf("failed to fetch dashboard stats: %w", statsErr)
	}
	if revErr != nil {
		return fmt.Errorf("failed to fetch revenue analytics: %w", revErr)
	}
	return nil
}
