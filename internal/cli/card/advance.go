package card

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// AdvanceCmd returns the card advance subcommand
func AdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance <card-id>",
		Short: "Move a card to the next column",
		Long: `Move a card to the column whose order follows its current one.

Blocked, finished and cancelled cards cannot advance (exit code 6).

Examples:
  taskboard card advance 7
  taskboard card advance 7 --json
`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCardAction(cmd, args, "advanced", func(ctx context.Context, c *cli.CLI, card *models.CardDetails, layout models.ColumnLayout) error {
				return c.App.CardService.Advance(ctx, card.ID, layout)
			})
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
