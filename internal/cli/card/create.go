package card

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
	cardservice "github.com/thenoetrevino/taskboard/internal/services/card"
	"github.com/thenoetrevino/taskboard/internal/types"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card in a board's initial column",
		Long: `Create a new card. Cards always start in the board's INITIAL column.

Examples:
  taskboard card create --board=1 --title="Fix login"

  # Description from stdin
  echo "Steps to reproduce..." | taskboard card create --board=1 --title="Fix login" --description=-

  # Quiet mode for bash capture
  CARD_ID=$(taskboard card create --board=1 --title="Fix login" --quiet)
`,
		Args: cli.ExactArgs(0),
		RunE: runCreate,
	}

	cmd.Flags().Int64("board", 0, "Board ID (required)")
	cmd.Flags().String("title", "", "Card title (required)")
	cmd.Flags().String("description", "", "Card description, markdown (use - for stdin)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardFlag, _ := cmd.Flags().GetInt64("board")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	boardID := types.BoardID(boardFlag)
	if !boardID.Valid() {
		return formatter.Fail(cli.Usagef("--board is required"))
	}
	if !cmd.Flags().Changed("title") {
		return formatter.Fail(cli.Usagef("--title is required"))
	}

	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(fmt.Errorf("failed to read description: %w", err))
		}
		description = strings.TrimRight(string(data), "\n")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	layout, err := cliInstance.App.QueryService.BoardColumns(ctx, boardID)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use 'taskboard board list' to see available boards")
	}
	initial, ok := layout.Initial()
	if !ok {
		return formatter.Fail(models.NewOperationError(cardservice.OpCreate, models.ErrInvalidColumnKind,
			boardID.ToInt64(), "board %d has no INITIAL column", boardID))
	}

	card, err := cliInstance.App.CardService.Create(ctx, cardservice.CreateCardRequest{
		Title:       title,
		Description: description,
		Column:      initial,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(card, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Card '%s' created successfully (ID: %d)\n", card.Title, card.ID)
		return err
	})
}
