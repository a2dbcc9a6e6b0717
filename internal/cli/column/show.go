package column

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// ShowCmd returns the column show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <column-id>",
		Short: "Show a column and its cards",
		Long: `Show a column with every card it holds.

Examples:
  taskboard column show 2
  taskboard column show 2 --json

  # Quiet mode (one card ID per line)
  taskboard column show 2 --quiet
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

	columnID, err := cli.ParseColumnArg(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	details, err := cliInstance.App.QueryService.ColumnDetails(ctx, columnID)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use 'taskboard board show <board-id>' to list a board's columns")
	}

	if formatter.Quiet {
		ids := make([]int64, len(details.Cards))
		for i, c := range details.Cards {
			ids[i] = c.ID.ToInt64()
		}
		return formatter.IDs(ids)
	}

	return formatter.Success(details, func(w io.Writer) error {
		return styles.Print(w, renderColumn(details))
	})
}

func renderColumn(details *models.ColumnDetails) string {
	var b strings.Builder
	b.WriteString(styles.Header(details.Name, details.ID.ToInt64()))
	b.WriteString(" ")
	b.WriteString(styles.KindBadge(details.Kind))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("board %d, order %d", details.BoardID, details.Order)))
	b.WriteString("\n")

	if len(details.Cards) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Italic(true).Render("No cards"))
		return styles.RenderCard(b.String())
	}
	for _, c := range details.Cards {
		line := fmt.Sprintf("\n• %s %s", c.Title, styles.SubtitleStyle.Render(fmt.Sprintf("#%d", c.ID)))
		if c.Blocked {
			line += " " + styles.Blocked("")
		}
		b.WriteString(line)
	}
	return styles.RenderCard(b.String())
}
