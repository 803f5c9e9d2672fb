package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var actionColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("ADMIN", "adminId"),
	render.Col("ACTION", "actionType"),
	render.Col("TARGET", "targetType"),
	render.Col("TARGET ID", "targetId"),
	render.Col("DESCRIPTION", "description"),
	render.Col("CREATED AT", "createdAt"),
}

var notificationColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("TITLE", "title"),
	render.Col("TYPE", "type"),
	render.Col("RECIPIENT", "recipientId"),
	render.Col("READ", "isRead"),
	render.Col("CREATED AT", "createdAt"),
}

type reportInput struct {
	Type   string   `flag:"<type>" validate:"required,oneof=USERS VENUES BOOKINGS REVENUE"`
	From   string   `flag:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string   `flag:"to" validate:"omitempty,datetime=2006-01-02"`
	Params []string `flag:"param"`
}

// NewActionsCmd creates the actions command
func NewActionsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Admin audit log",
	}

	var list paramFlags
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded admin actions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(list); err != nil {
				return err
			}
			q, err := list.query()
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.GetAdminActions(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to fetch admin actions: %w", err)
			}
			return env.Render.List(data, actionColumns, "No admin actions recorded.")
		},
	}
	list.register(listCmd)
	cmd.AddCommand(listCmd)

	var payload payloadFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Record an admin action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := payload.read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.CreateAdminAction(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to record admin action: %w", err)
			}
			return env.Render.Result(data, "✓ Admin action recorded")
		},
	}
	payload.register(createCmd, "the action")
	cmd.AddCommand(createCmd)

	return cmd
}

// NewReportsCmd creates the reports command
func NewReportsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate and download reports",
	}

	var input reportInput
	generateCmd := &cobra.Command{
		Use:   "generate <type>",
		Short: "Generate a report (USERS, VENUES, BOOKINGS, REVENUE)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Type = strings.ToUpper(args[0])
			if err := checkInput(input); err != nil {
				return err
			}
			filters := client.NewQuery().
				Add("dateFrom", optString(cmd, "from")).
				Add("dateTo", optString(cmd, "to"))
			filters, err := addParams(filters, input.Params)
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.GenerateReport(cmd.Context(), input.Type, filters)
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}
			return env.Render.Raw(data)
		},
	}
	generateCmd.Flags().StringVar(&input.From, "from", "", "Start date (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&input.To, "to", "", "End date (YYYY-MM-DD)")
	generateCmd.Flags().StringArrayVar(&input.Params, "param", nil, "Extra query parameter as key=value (repeatable)")
	cmd.AddCommand(generateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "download <report-id>",
		Short: "Download a generated report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.DownloadReport(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to download report: %w", err)
			}
			return env.Render.Raw(data)
		},
	})

	return cmd
}

// NewNotificationsCmd creates the notifications command
func NewNotificationsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List and send platform notifications",
	}

	var list paramFlags
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sent notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(list); err != nil {
				return err
			}
			q, err := list.query()
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.GetNotifications(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to fetch notifications: %w", err)
			}
			return env.Render.List(data, notificationColumns, "No notifications found.")
		},
	}
	list.register(listCmd)
	cmd.AddCommand(listCmd)

	var payload payloadFlags
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := payload.read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.SendNotification(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to send notification: %w", err)
			}
			return env.Render.Result(data, "✓ Notification sent")
		},
	}
	payload.register(sendCmd, "the notification")
	cmd.AddCommand(sendCmd)

	return cmd
}

// NewSettingsCmd creates the settings command
func NewSettingsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change platform settings",
	}

	cmd.AddCommand(rawCommand(open, "get", "Show platform settings", "failed to fetch platform settings", (*client.Client).GetPlatformSettings))

	var payload payloadFlags
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update platform settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := payload.read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.UpdatePlatformSettings(cmd.Context(), body)
			if err != nil {
				return fmt.Errorf("failed to update platform settings: %w", err)
			}
			return env.Render.Result(data, "✓ Settings saved")
		},
	}
	payload.register(updateCmd, "the settings")
	cmd.AddCommand(updateCmd)

	return cmd
}
