package card

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// HistoryCmd returns the card history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <card-id>",
		Short: "Show a card's block history",
		Long: `List every BLOCK and UNBLOCK event of a card, oldest first.

Examples:
  taskboard card history 7
  taskboard card history 7 --json
`,
		Args: cli.ExactArgs(1),
		RunE: runHistory,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	history, err := cliInstance.App.QueryService.BlockHistory(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		ids := make([]int64, len(history))
		for i, h := range history {
			ids[i] = h.ID.ToInt64()
		}
		return formatter.IDs(ids)
	}

	return formatter.Success(history, func(w io.Writer) error {
		if len(history) == 0 {
			fmt.Fprintf(w, "Card %d has never been blocked\n", cardID)
			return nil
		}
		fmt.Fprintf(w, "Block history of card %d:\n", cardID)
		for _, h := range history {
			event := styles.SuccessStyle.Render(string(h.Event))
			if h.Event == models.EventBlock {
				event = styles.BlockedStyle.Render(string(h.Event))
			}
			line := fmt.Sprintf("  %s %s %s", h.CreatedAt.Local().Format("2006-01-02 15:04"), event, h.Reason)
			if err := styles.Print(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}
