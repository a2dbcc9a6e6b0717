package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board-id>",
		Short: "Show a board's columns and card counts",
		Long: `Show a board with each of its columns and the number of cards in it.

Examples:
  taskboard board show 1
  taskboard board show 1 --json
`,
		Args: cli.ExactArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.ParseBoardArg(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	details, err := cliInstance.App.QueryService.BoardDetails(ctx, boardID)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use 'taskboard board list' to see available boards")
	}

	return formatter.Success(details, func(w io.Writer) error {
		return styles.Print(w, renderBoard(details))
	})
}

func renderBoard(details *models.BoardDetails) string {
	var b strings.Builder
	b.WriteString(styles.Header(details.Name, details.ID.ToInt64()))
	b.WriteString("\n")
	for _, col := range details.Columns {
		fmt.Fprintf(&b, "\n%s %s  %s",
			styles.LabelStyle.Render(col.Name),
			styles.KindBadge(col.Kind),
			styles.SubtitleStyle.Render(fmt.Sprintf("%d cards (column %d)", col.CardsAmount, col.ID)))
	}
	return styles.RenderCard(b.String())
}
