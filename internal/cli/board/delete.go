package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/models"
	boardservice "github.com/thenoetrevino/taskboard/internal/services/board"
)

// deleteResult is the JSON payload of board delete
type deleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

func (r deleteResult) GetID() int64 {
	return r.ID
}

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board with its columns, cards and block history",
		Long: `Delete a board. Its columns, cards and block history are removed with it.

Deleting a board that does not exist fails with exit code 3 and changes nothing.

Examples:
  taskboard board delete 1
  taskboard board delete 1 --json
`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	deleted, err := cliInstance.App.BoardService.Delete(ctx, boardID)
	if err != nil {
		return formatter.Fail(err)
	}
	if !deleted {
		return formatter.FailWithSuggestion(
			models.NewOperationError(boardservice.OpDelete, models.ErrNotFound, boardID.ToInt64(), "board %d not found", boardID),
			"Use 'taskboard board list' to see available boards")
	}

	return formatter.Success(deleteResult{ID: boardID.ToInt64(), Deleted: true}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Board %d deleted\n", boardID)
		return err
	})
}
