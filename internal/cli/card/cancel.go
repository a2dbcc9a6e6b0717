package card

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
	cardservice "github.com/thenoetrevino/taskboard/internal/services/card"
)

// CancelCmd returns the card cancel subcommand
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <card-id>",
		Short: "Move a card to its board's cancel column",
		Long: `Move a card to the board's CANCEL column.

Only cards that could still advance can be cancelled.

Examples:
  taskboard card cancel 7
`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCardAction(cmd, args, "cancelled", cancelCard)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func cancelCard(ctx context.Context, c *cli.CLI, card *models.CardDetails, layout models.ColumnLayout) error {
	target, ok := layout.Cancel()
	if !ok {
		return models.NewOperationError(cardservice.OpCancel, models.ErrInvalidColumnKind, card.BoardID.ToInt64(),
			"board %d has no CANCEL column", card.BoardID)
	}
	return c.App.CardService.Cancel(ctx, card.ID, target.ID, layout)
}
