package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaathzanar/playera-admin-portal/internal/cli/render"
)

var paymentColumns = []render.Column{
	render.Col("ID", "id"),
	render.Col("BOOKING", "bookingId"),
	render.Col("AMOUNT", "amount"),
	render.Col("STATUS", "status"),
	render.Col("METHOD", "paymentMethod"),
	render.Col("TRANSACTION", "transactionId"),
	render.Col("CREATED AT", "createdAt"),
}

type paymentListInput struct {
	paramFlags
	Status string `flag:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
}

type refundInput struct {
	Amount float64 `flag:"amount" validate:"gt=0"`
	Reason string  `flag:"reason" validate:"required"`
}

// NewPaymentsCmd creates the payments command
func NewPaymentsCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Inspect payments and issue refunds",
	}

	cmd.AddCommand(newPaymentsListCmd(open))
	cmd.AddCommand(idCommand(open, "get", "Show one payment", func(cmd *cobra.Command, env *Env, id int64) error {
		data, err := env.Client.GetPayment(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch payment %d: %w", id, err)
		}
		return env.Render.Record(data, paymentColumns)
	}))
	cmd.AddCommand(newRefundCmd(open))

	return cmd
}

func newPaymentsListCmd(open Opener) *cobra.Command {
	var input paymentListInput

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List payments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(input); err != nil {
				return err
			}
			q, err := input.query()
			if err != nil {
				return err
			}
			q.Add("status", optString(cmd, "status"))

			env, err := openAuthed(cmd, open)
			if err != nil {
				return err
			}

			data, err := env.Client.GetPayments(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("failed to fetch payments: %w", err)
			}
			return env.Render.List(data, paymentColumns, "No payments found.")
		},
	}

	input.register(cmd)
	cmd.Flags().StringVar(&input.Status, "status", "", "Filter by status (PENDING, COMPLETED, FAILED, REFUNDED)")

	return cmd
}

func newRefundCmd(open Opener) *cobra.Command {
	var input refundInput

	cmd := &cobra.Command{
		Use:   "refund <payment-id>",
		Short: "Refund a payment",
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

			data, err := env.Client.ProcessRefund(cmd.Context(), id, input.Amount, input.Reason)
			if err != nil {
				return fmt.Errorf("failed to process refund: %w", err)
			}
			return env.Render.Result(data, fmt.Sprintf("✓ Refund of %.2f issued for payment %d", input.Amount, id))
		},
	}

	cmd.Flags().Float64Var(&input.Amount, "amount", 0, "Amount to refund (required)")
	cmd.Flags().StringVar(&input.Reason, "reason", "", "Reason for the refund (required)")

	return cmd
}
