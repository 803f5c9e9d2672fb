package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var ownerColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("NAME", "name"),
	render.Col("EMAIL", "email"),
	render.Col("PHONE", "phone"),
	render.Col("ACTIVE", "isActive"),
	render.Col("APPROVED", "isApproved"),
	render.Col("CREATED AT", "createdAt"),
}

type ownerListInput struct {
	listFlags
	Status string `flag:"status" validate:"omitempty,oneof=active inactive"`
}

// NewOwnersCmd creates the owners command
func NewOwnersCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "owners",
		Aliases: []string{"venue-owners"},
		Short:   "Manage venue owners",
	}

	cmd.AddCommand(newOwnersListCmd(open))
	cmd.AddCommand(idCommand(open, "get", "Show one venue owner", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.GetVenueOwner(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch venue owner %d: %w", id, err)
		}
		return env.Render.Record(data, append(slices.Clone(userFields), render.Col("Approved", "isApproved")))
	}))
	cmd.AddCommand(newOwnerStatusCmd(open, "activate", true))
	cmd.AddCommand(newOwnerStatusCmd(open, "deactivate", false))
	cmd.AddCommand(newOwnerApprovalCmd(open, "approve", true))
	cmd.AddCommand(newOwnerApprovalCmd(open, "reject", false))

	return cmd
}

func newOwnersListCmd(open Opener) *cobra.Command {
	var input ownerListInput

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List venue owners",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			filters := client.VenueOwnerFilters{
				Page:     client.Ptr(input.Page),
				Size:     client.Ptr(input.Size),
				Search:   optString(cmd, "search"),
				IsActive: activeFilter(input.Status),
			}

			data, err := env.Client.GetVenueOwners(cmd.Context(), filters)
			if err != nil {
				return fmt.Errorf("failed to fetch venue owners: %w", err)
			}
			return env.Render.List(data, ownerColumns, "No venue owners found.")
		},
	}

	input.register(cmd)
	cmd.Flags().String("search", "", "Search by name or email")
	cmd.Flags().StringVar(&input.Status, "status", "", "Filter by status (active, inactive)")

	return cmd
}

func newOwnerStatusCmd(open Opener, verb string, isActive bool) *cobra.Command {
	var reason string

	cmd := idCommand(open, verb, fmt.Sprintf("Set a venue owner %s", activeWord(isActive)), func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.UpdateVenueOwnerStatus(cmd.Context(), id, isActive, reason)
		if err != nil {
			return fmt.Errorf("failed to update venue owner status: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ Venue owner %d is now %s", id, activeWord(isActive)))
	})
	cmd.Flags().StringVar(&reason, "reason", statusReason, "Reason recorded with the change")

	return cmd
}

func newOwnerApprovalCmd(open Opener, verb string, approved bool) *cobra.Command {
	var reason string

	cmd := idCommand(open, verb, fmt.Sprintf("%s a venue owner", titleVerb(verb)), func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.ApproveVenueOwner(cmd.Context(), id, approved, reason)
		if err != nil {
			return fmt.Errorf("failed to update venue owner approval status: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ Venue owner %d %s", id, approvalWord(approved)))
	})
	cmd.Flags().StringVar(&reason, "reason", fmt.Sprintf("Venue owner %s by admin", approvalWord(approved)), "Reason recorded with the decision")

	return cmd
}
