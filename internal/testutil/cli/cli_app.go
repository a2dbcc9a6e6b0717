package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/cli"
)

// Result is the captured outcome of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode returns the exit code the process would end with
func (r Result) ExitCode() int {
	return cli.ExitCode(r.Err)
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res := RunCLICommand(t, testApp, cmd, args, "")
	return res.Stdout, res.Err
}

// RunCLICommand executes a CLI command with the given stdin and captures
// both output streams.
func RunCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, stdin string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
