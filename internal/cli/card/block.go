package card

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// BlockCmd returns the card block subcommand
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block <card-id>",
		Short: "Block a card",
		Long: `Block a card with a reason. The event is kept in the card's block history.

Cards in FINAL or CANCEL columns cannot be blocked.

Examples:
  taskboard card block 7 --reason="waiting on review"
`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			return runCardAction(cmd, args, "blocked", func(ctx context.Context, c *cli.CLI, card *models.CardDetails, layout models.ColumnLayout) error {
				return c.App.CardService.Block(ctx, card.ID, reason, layout)
			})
		},
	}

	cmd.Flags().String("reason", "", "Why the card is blocked (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// UnblockCmd returns the card unblock subcommand
func UnblockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unblock <card-id>",
		Short: "Unblock a card",
		Long: `Unblock a card with a reason. The event is kept in the card's block history.

Examples:
  taskboard card unblock 7 --reason="review done"
`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			return runCardAction(cmd, args, "unblocked", func(ctx context.Context, c *cli.CLI, card *models.CardDetails, _ models.ColumnLayout) error {
				return c.App.CardService.Unblock(ctx, card.ID, reason)
			})
		},
	}

	cmd.Flags().String("reason", "", "Why the card is unblocked (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}
