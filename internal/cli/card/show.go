package card

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card",
		Long: `Show a card with its column, blocked state and rendered description.

Examples:
  taskboard card show 7
  taskboard card show 7 --json
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

	cardID, err := cli.ParseCardArg(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	details, err := cliInstance.App.QueryService.CardDetails(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(details, func(w io.Writer) error {
		return styles.Print(w, renderCard(details))
	})
}

func renderCard(card *models.CardDetails) string {
	var b strings.Builder
	b.WriteString(styles.Header(card.Title, card.ID.ToInt64()))
	if card.Blocked {
		b.WriteString(" ")
		b.WriteString(styles.Blocked(""))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Field("Board", fmt.Sprintf("%d", card.BoardID)))
	b.WriteString("\n")
	b.WriteString(styles.Field("Column", fmt.Sprintf("%s (%d)", card.ColumnName, card.ColumnID)))
	b.WriteString(" ")
	b.WriteString(styles.KindBadge(card.ColumnKind))
	b.WriteString("\n")
	if card.Blocked {
		b.WriteString(styles.Field("Blocked", card.BlockReason))
		b.WriteString("\n")
	}
	b.WriteString(styles.Field("Times blocked", fmt.Sprintf("%d", card.BlocksAmount)))
	b.WriteString("\n")
	b.WriteString(styles.Field("Created", card.CreatedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString("\n")

	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.Markdown(card.Description, styles.CardWidth-6))

	return styles.RenderCard(b.String())
}
