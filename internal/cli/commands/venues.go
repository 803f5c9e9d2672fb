package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var venueColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("NAME", "name"),
	render.Col("LOCATION", "location"),
	render.Col("OWNER", "owner.name"),
	render.Col("TYPE", "venueType"),
	render.Col("ACTIVE", "isActive"),
	render.Col("APPROVED", "isApproved"),
	render.Col("CREATED AT", "createdAt"),
}

var venueFields = []render.Column{
	render.Col("ID", "id"),
	render.Col("Name", "name"),
	render.Col("Address", "address"),
	render.Col("Location", "location"),
	render.Col("Type", "venueType"),
	render.Col("Capacity", "maxCapacity"),
	render.Col("Base price", "basePrice"),
	render.Col("Contact", "contactNo"),
	render.Col("Email", "email"),
	render.Col("Owner", "owner.name"),
	render.Col("Owner email", "owner.email"),
	render.Col("Parking", "parkingAvailable"),
	render.Col("Food", "foodAvailable"),
	render.Col("Changing rooms", "changingRoomsAvailable"),
	render.Col("Showers", "showerAvailable"),
	render.Col("WiFi", "wifiAvailable"),
	render.Col("Active", "isActive"),
	render.Col("Approved", "isApproved"),
	render.Col("Created", "createdAt"),
}

type venueListInput struct {
	listFlags
	Status   string `flag:"status" validate:"omitempty,oneof=active inactive"`
	Approval string `flag:"approval" validate:"omitempty,oneof=approved pending"`
	Type     string `flag:"type" validate:"omitempty,oneof=INDOOR OUTDOOR"`
}

// NewVenuesCmd creates the venues command
func NewVenuesCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Manage venues and their approval",
	}

	cmd.AddCommand(newVenuesListCmd(open))
	cmd.AddCommand(idCommand(open, "get", "Show one venue", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.GetVenue(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch venue %d: %w", id, err)
		}
		return env.Render.Record(data, venueFields)
	}))
	cmd.AddCommand(newVenueApprovalCmd(open, "approve", true))
	cmd.AddCommand(newVenueApprovalCmd(open, "reject", false))
	cmd.AddCommand(newVenueStatusCmd(open, "activate", true))
	cmd.AddCommand(newVenueStatusCmd(open, "deactivate", false))

	deleteCmd := idCommand(open, "delete", "Delete a venue", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.DeleteVenue(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete venue: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ Venue %d deleted", id))
	})
	deleteCmd.Aliases = []string{"rm"}
	cmd.AddCommand(deleteCmd)

	cmd.AddCommand(rawCommand(open, "analytics", "Show venue analytics", "failed to load venue analytics", (*client.Client).GetVenueAnalytics))

	return cmd
}

func newVenuesListCmd(open Opener) *cobra.Command {
	var input venueListInput

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List venues",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			filters := client.VenueFilters{
				Page:       client.Ptr(input.Page),
				Size:       client.Ptr(input.Size),
				Search:     optString(cmd, "search"),
				VenueType:  optString(cmd, "type"),
				IsActive:   activeFilter(input.Status),
				IsApproved: approvalFilter(input.Approval),
			}

			data, err := env.Client.GetVenues(cmd.Context(), filters)
			if err != nil {
				return fmt.Errorf("failed to fetch venues: %w", err)
			}
			return env.Render.List(data, venueColumns, "No venues found.")
		},
	}

	input.register(cmd)
	cmd.Flags().String("search", "", "Search by name or location")
	cmd.Flags().StringVar(&input.Type, "type", "", "Filter by venue type (INDOOR, OUTDOOR)")
	cmd.Flags().StringVar(&input.Status, "status", "", "Filter by status (active, inactive)")
	cmd.Flags().StringVar(&input.Approval, "approval", "", "Filter by approval (approved, pending)")

	return cmd
}

func newVenueApprovalCmd(open Opener, verb string, approved bool) *cobra.Command {
	var reason string

	cmd := idCommand(open, verb, fmt.Sprintf("%s a pending venue", titleVerb(verb)), func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.ApproveVenue(cmd.Context(), id, approved, reason)
		if err != nil {
			return fmt.Errorf("failed to update venue approval status: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ Venue %d %s", id, approvalWord(approved)))
	})
	cmd.Flags().StringVar(&reason, "reason", fmt.Sprintf("Venue %s by admin", approvalWord(approved)), "Reason recorded with the decision")

	return cmd
}

func newVenueStatusCmd(open Opener, verb string, isActive bool) *cobra.Command {
	var reason string

	cmd := idCommand(open, verb, fmt.Sprintf("Set a venue %s", activeWord(isActive)), func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.UpdateVenueStatus(cmd.Context(), id, isActive, reason)
		if err != nil {
			return fmt.Errorf("failed to update venue status: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ Venue %d is now %s", id, activeWord(isActive)))
	})
	cmd.Flags().StringVar(&reason, "reason", statusReason, "Reason recorded with the change")

	return cmd
}

// approvalFilter maps --approval approved|pending to an isApproved filter
func approvalFilter(approval string) *bool {
	switch approval {
	case "approved":
		return client.Ptr(true)
	case "pending":
		return client.Ptr(false)
	default:
		return nil
	}
}

func approvalWord(approved bool) string {
	if approved {
		return "approved"
	}
	return "rejected"
}

func titleVerb(verb string) string {
	if verb == "" {
		return verb
	}
	return string(verb[0]-'a'+'A') + verb[1:]
}
