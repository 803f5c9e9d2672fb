package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/client"
	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var reviewColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("VENUE", "venue.name"),
	render.Col("CUSTOMER", "customer.name"),
	render.Col("RATING", "rating"),
	render.Col("VERIFIED", "isVerified"),
	render.Col("COMMENT", "comment"),
	render.Col("CREATED AT", "createdAt"),
}

type moderateInput struct {
	Action string `flag:"action" validate:"required,oneof=APPROVE REJECT HIDE"`
	Reason string `flag:"reason"`
}

// NewReviewsCmd creates the reviews command
func NewReviewsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Moderate venue reviews",
	}

	cmd.AddCommand(newReviewsListCmd(open))
	cmd.AddCommand(idCommand(open, "get", "Show one review", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.GetReview(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch review %d: %w", id, err)
		}
		return env.Render.Record(data, reviewColumns)
	}))
	cmd.AddCommand(newModerateCmd(open))

	return cmd
}

func newReviewsListCmd(open Opener) *cobra.Command {
	var input paramFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List reviews",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			q, err := input.query()
			if err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.GetReviews(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to fetch reviews: %w", err)
			}
			return env.Render.List(data, reviewColumns, "No reviews found.")
		},
	}

	input.register(cmd)

	return cmd
}

func newModerateCmd(open Opener) *cobra.Command {
	var input moderateInput

	cmd := &cobra.Command{
		Use:   "moderate <id>",
		Short: "Approve, reject or hide a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input.Action = strings.ToUpper(input.Action)
			if err := checkInput(input); err != nil {
				return err
			}
			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			action := client.ModerationAction(input.Action)
			data, err := env.Client.ModerateReview(cmd.Context(), id, action, input.Reason)
			if err != nil {
				return fmt.Errorf("failed to moderate review: %w", err)
			}
			return env.Render.Result(data, fmt.Sprintf("✓ Review %d: %s", id, action))
		},
	}

	cmd.Flags().StringVar(&input.Action, "action", "", "Moderation decision (APPROVE, REJECT, HIDE)")
	cmd.Flags().StringVar(&input.Reason, "reason", "", "Reason recorded with the decision")

	return cmd
}
