package card

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(AdvanceCmd())
	cmd.AddCommand(CancelCmd())
	cmd.AddCommand(BlockCmd())
	cmd.AddCommand(UnblockCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(HistoryCmd())

	return cmd
}

// cardAction runs a lifecycle operation against the card named by the single
// positional argument and reports the card's state afterwards.
type cardAction func(ctx context.Context, c *cli.CLI, card *models.CardDetails, layout models.ColumnLayout) error

func runCardAction(cmd *cobra.Command, args []string, verb string, action cardAction) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cardID, err := cli.ParseCardArg(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	card, layout, err := cliInstance.CardLayout(ctx, cardID)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use 'taskboard column show <column-id>' to list cards")
	}

	if err := action(ctx, cliInstance, card, layout); err != nil {
		return formatter.Fail(err)
	}

	return reportCard(ctx, formatter, cliInstance, cardID, verb)
}

func reportCard(ctx context.Context, formatter *cli.OutputFormatter, c *cli.CLI, cardID types.CardID, verb string) error {
	details, err := c.App.QueryService.CardDetails(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(details, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Card %d %s\n", details.ID, verb)
		fmt.Fprintf(w, "  Column: %s (%s)\n", details.ColumnName, details.ColumnKind)
		if details.Blocked {
			fmt.Fprintf(w, "  Blocked: %s\n", details.BlockReason)
		}
		return nil
	})
}
