package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/cli/styles"
	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/templates"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a board with an initial, pending, final and (optionally) cancel column.

Column names come from the configuration unless a template is given.

Examples:
  # Default layout: Todo, In Progress, Done, Cancelled
  taskboard board create --name="Release"

  # Custom pending columns, no cancel column
  taskboard board create --name="Release" --pending=Review,QA --no-cancel

  # Layout from a TOML template
  taskboard board create --template=release.toml

  # Quiet mode for bash capture
  BOARD_ID=$(taskboard board create --name="Release" --quiet)
`,
		Args: cli.ExactArgs(0),
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required unless the template names the board)")
	cmd.Flags().StringSlice("pending", nil, "Comma separated PENDING column names")
	cmd.Flags().Bool("no-cancel", false, "Create the board without a CANCEL column")
	cmd.Flags().String("template", "", "TOML file describing the columns")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	pending, _ := cmd.Flags().GetStringSlice("pending")
	noCancel, _ := cmd.Flags().GetBool("no-cancel")
	templatePath, _ := cmd.Flags().GetString("template")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	var board *models.Board
	if templatePath != "" {
		if cmd.Flags().Changed("pending") || noCancel {
			return formatter.Fail(cli.Usagef("--template cannot be combined with --pending or --no-cancel"))
		}
		board, err = templates.LoadFile(templatePath)
		if err != nil {
			return formatter.Fail(err)
		}
		if name != "" {
			board.Name = name
		}
	} else {
		if strings.TrimSpace(name) == "" {
			return formatter.FailWithSuggestion(cli.Usagef("--name is required"),
				"Pass --name or a --template that sets name")
		}
		board = cliInstance.App.NewBoard(name, pending, !noCancel)
	}

	created, err := cliInstance.App.BoardService.Insert(ctx, board)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(created, func(w io.Writer) error {
		fmt.Fprintf(w, "✓ Board '%s' created successfully (ID: %d)\n", created.Name, created.ID)
		for _, col := range created.Columns {
			if err := styles.Print(w, fmt.Sprintf("  %d. %s %s (ID: %d)", col.Order, col.Name, styles.KindBadge(col.Kind), col.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}
