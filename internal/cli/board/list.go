package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/cli"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards.

Examples:
  taskboard board list
  taskboard board list --json
  taskboard board list --quiet
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	boards, err := cliInstance.App.QueryService.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		ids := make([]int64, len(boards))
		for i, b := range boards {
			ids[i] = b.GetID()
		}
		return formatter.IDs(ids)
	}

	return formatter.Success(boards, func(w io.Writer) error {
		if len(boards) == 0 {
			fmt.Fprintln(w, "No boards found")
			return nil
		}
		fmt.Fprintln(w, "Boards:")
		for _, b := range boards {
			fmt.Fprintf(w, "  %d. %s\n", b.ID, b.Name)
		}
		return nil
	})
}
