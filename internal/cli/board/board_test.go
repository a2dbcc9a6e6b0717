package board

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/testutil"
	clitest "github.com/thenoetrevino/taskboard/internal/testutil/cli"
)

// ============================================================================
// board create
// ============================================================================

func TestCreateBoard_Positive(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("default layout", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Release"})
		require.NoError(t, err)

		assert.Contains(t, output, "Board 'Release' created successfully")
		assert.Contains(t, output, "Todo")
		assert.Contains(t, output, "In Progress")
		assert.Contains(t, output, "Cancelled")
	})

	t.Run("custom pending columns without cancel", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Pipeline", "--pending", "Review,QA", "--no-cancel", "--json",
		})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		assert.True(t, result["success"].(bool))
		columns := result["data"].(map[string]any)["columns"].([]any)
		require.Len(t, columns, 4)

		kinds := make([]string, len(columns))
		for i, c := range columns {
			kinds[i] = c.(map[string]any)["kind"].(string)
		}
		assert.Equal(t, []string{"INITIAL", "PENDING", "PENDING", "FINAL"}, kinds)
		assert.Equal(t, "Review", columns[1].(map[string]any)["name"])
	})

	t.Run("quiet mode prints the id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Quiet", "--quiet"})
		require.NoError(t, err)

		id, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
		require.NoError(t, err)
		assert.Positive(t, id)
	})

	assert.Equal(t, 3, testutil.CountRows(t, db, "boards"))
}

func TestCreateBoard_Template(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	dir := t.TempDir()

	valid := filepath.Join(dir, "release.toml")
	require.NoError(t, os.WriteFile(valid, []byte(`
name = "From Template"

[[columns]]
name = "Backlog"
kind = "initial"

[[columns]]
name = "Shipped"
kind = "final"
`), 0o644))

	t.Run("template layout", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--template", valid})
		require.NoError(t, err)
		assert.Contains(t, output, "Board 'From Template' created successfully")
		assert.Contains(t, output, "Backlog")
	})

	t.Run("name flag overrides the template name", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--template", valid, "--name", "Renamed"})
		require.NoError(t, err)
		assert.Contains(t, output, "Board 'Renamed' created successfully")
	})

	t.Run("malformed template", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("name = \"x\"\n[[columns]]\nname = \"a\"\nkind = \"archived\"\n"), 0o644))

		res := clitest.RunCLICommand(t, app, CreateCmd(), []string{"--template", bad}, "")
		assert.Equal(t, cli.ExitDataErr, res.ExitCode())
	})

	t.Run("template layout rejected by validation", func(t *testing.T) {
		twoInitial := filepath.Join(dir, "two-initial.toml")
		require.NoError(t, os.WriteFile(twoInitial, []byte(`
name = "Broken"

[[columns]]
name = "A"
kind = "initial"

[[columns]]
name = "B"
kind = "initial"

[[columns]]
name = "C"
kind = "final"
`), 0o644))

		res := clitest.RunCLICommand(t, app, CreateCmd(), []string{"--template", twoInitial, "--json"}, "")
		assert.Equal(t, cli.ExitValidation, res.ExitCode())
		assert.Contains(t, res.Stdout, `"code":"VALIDATION_ERROR"`)
	})

	assert.Equal(t, 2, testutil.CountRows(t, db, "boards"))
	assert.Equal(t, 4, testutil.CountRows(t, db, "columns"))
}

func TestCreateBoard_Negative(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing name", []string{}, cli.ExitUsage},
		{"blank name", []string{"--name", "   "}, cli.ExitUsage},
		{"template with pending", []string{"--template", "x.toml", "--pending", "A"}, cli.ExitUsage},
		{"missing template file", []string{"--template", filepath.Join(t.TempDir(), "nope.toml")}, cli.ExitError},
		{"name too long", []string{"--name", strings.Repeat("x", 256)}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := clitest.RunCLICommand(t, app, CreateCmd(), tt.args, "")
			assert.Error(t, res.Err)
			assert.Equal(t, tt.code, res.ExitCode())
			assert.Contains(t, res.Stderr, "Error:")
		})
	}

	assert.Equal(t, 0, testutil.CountRows(t, db, "boards"))
}

// ============================================================================
// board list / show
// ============================================================================

func TestListBoards(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No boards found")

	first := clitest.CreateTestBoard(t, db, "Alpha")
	second := clitest.CreateTestBoard(t, db, "Beta")

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Alpha")
	assert.Contains(t, output, "Beta")

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, first.ID.ToInt64(), mustParse(t, strings.Fields(output)[0]))
	assert.Equal(t, second.ID.ToInt64(), mustParse(t, strings.Fields(output)[1]))

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	result := clitest.ParseJSON(t, output)
	assert.Len(t, result["data"].([]any), 2)
}

func TestShowBoard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	board := clitest.CreateTestBoard(t, db, "Show Me")
	clitest.CreateTestCard(t, db, board.Columns[0].ID, "one")
	clitest.CreateTestCard(t, db, board.Columns[0].ID, "two")

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{board.ID.String()})
		require.NoError(t, err)
		assert.Contains(t, output, "Show Me")
		assert.Contains(t, output, "Todo")
		assert.Contains(t, output, "2 cards")
		assert.Contains(t, output, "Cancelled")
	})

	t.Run("json output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{board.ID.String(), "--json"})
		require.NoError(t, err)

		data := clitest.ParseJSON(t, output)["data"].(map[string]any)
		columns := data["columns"].([]any)
		require.Len(t, columns, 4)
		assert.Equal(t, float64(2), columns[0].(map[string]any)["cards_amount"])
		assert.Equal(t, float64(0), columns[1].(map[string]any)["cards_amount"])
	})

	t.Run("unknown board", func(t *testing.T) {
		res := clitest.RunCLICommand(t, app, ShowCmd(), []string{"999"}, "")
		assert.Equal(t, cli.ExitNotFound, res.ExitCode())
		assert.Contains(t, res.Stderr, "board list")
	})

	t.Run("bad id", func(t *testing.T) {
		res := clitest.RunCLICommand(t, app, ShowCmd(), []string{"abc"}, "")
		assert.Equal(t, cli.ExitUsage, res.ExitCode())
	})

	t.Run("missing id", func(t *testing.T) {
		res := clitest.RunCLICommand(t, app, ShowCmd(), nil, "")
		assert.Equal(t, cli.ExitUsage, res.ExitCode())
	})
}

// ============================================================================
// board delete
// ============================================================================

func TestDeleteBoard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	board := clitest.CreateTestBoard(t, db, "Doomed")
	clitest.CreateTestCard(t, db, board.Columns[1].ID, "orphan")
	keep := clitest.CreateTestBoard(t, db, "Keep")

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{board.ID.String()})
	require.NoError(t, err)
	assert.Contains(t, output, "deleted")

	assert.Equal(t, 1, testutil.CountRows(t, db, "boards"))
	assert.Equal(t, len(keep.Columns), testutil.CountRows(t, db, "columns"))
	assert.Equal(t, 0, testutil.CountRows(t, db, "cards"))

	res := clitest.RunCLICommand(t, app, DeleteCmd(), []string{board.ID.String(), "--json"}, "")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
	assert.Contains(t, res.Stdout, `"success":false`)
	assert.Equal(t, 1, testutil.CountRows(t, db, "boards"))
}

func mustParse(t *testing.T, s string) int64 {
	t.Helper()
	v, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err)
	return v
}
