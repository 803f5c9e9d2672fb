package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

const statusReason = "Status updated by admin"

var userColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("NAME", "name"),
	render.Col("EMAIL", "email"),
	render.Col("ROLE", "role"),
	render.Col("ACTIVE", "isActive"),
	render.Col("CREATED AT", "createdAt"),
}

var userFields = []render.Column{
	render.Col("ID", "id"),
	render.Col("Name", "name"),
	render.Col("Email", "email"),
	render.Col("Phone", "phone"),
	render.Col("Role", "role"),
	render.Col("Active", "isActive"),
	render.Col("Last login", "lastLogin"),
	render.Col("Created", "createdAt"),
	render.Col("Updated", "updatedAt"),
}

type userListInput struct {
	listFlags
	Status string `flag:"status" validate:"omitempty,oneof=active inactive"`
	Role   string `flag:"role" validate:"omitempty,oneof=ADMIN CUSTOMER VENUE_OWNER"`
}

// NewUsersCmd creates the users command
func NewUsersCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform users",
	}

	cmd.AddCommand(newUsersListCmd(open))
	cmd.AddCommand(idCommand(open, "get", "Show one user", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.GetUser(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch user %d: %w", id, err)
		}
		return env.Render.Record(data, userFields)
	}))
	cmd.AddCommand(newUserStatusCmd(open, "activate", true))
	cmd.AddCommand(newUserStatusCmd(open, "deactivate", false))

	deleteCmd := idCommand(open, "delete", "Delete a user", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.DeleteUser(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ User %d deleted", id))
	})
	deleteCmd.Aliases = []string{"rm"}
	cmd.AddCommand(deleteCmd)

	cmd.AddCommand(rawCommand(open, "analytics", "Show user analytics", "failed to load user analytics", (*client.Client).GetUserAnalytics))

	return cmd
}

func newUsersListCmd(open Opener) *cobra.Command {
	var input userListInput

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			filters := client.UserFilters{
				Page:     client.Ptr(input.Page),
				Size:     client.Ptr(input.Size),
				Search:   optString(cmd, "search"),
				Role:     optString(cmd, "role"),
				IsActive: activeFilter(input.Status),
			}

			data, err := env.Client.GetUsers(cmd.Context(), filters)
			if err != nil {
				return fmt.Errorf("failed to fetch users: %w", err)
			}
			return env.Render.List(data, userColumns, "No users found.")
		},
	}

	input.register(cmd)
	cmd.Flags().String("search", "", "Search by name or email")
	cmd.Flags().StringVar(&input.Role, "role", "", "Filter by role (ADMIN, CUSTOMER, VENUE_OWNER)")
	cmd.Flags().StringVar(&input.Status, "status", "", "Filter by status (active, inactive)")

	return cmd
}

func newUserStatusCmd(open Opener, verb string, isActive bool) *cobra.Command {
	var reason string

	cmd := idCommand(open, verb, fmt.Sprintf("Set a user %s", activeWord(isActive)), func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.UpdateUserStatus(cmd.Context(), id, isActive, reason)
		if err != nil {
			return fmt.Errorf("failed to update user status: %w", err)
		}
		return env.Render.Result(data, fmt.Sprintf("✓ User %d is now %s", id, activeWord(isActive)))
	})
	cmd.Flags().StringVar(&reason, "reason", statusReason, "Reason recorded with the change")

	return cmd
}

func activeWord(isActive bool) string {
	if isActive {
		return "active"
	}
	return "inactive"
}
