package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskboard/internal/cli"
	"github.com/thenoetrevino/taskboard/internal/config"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(rt))
	cmd.AddCommand(newConfigShowCmd(rt))

	return cmd
}

func newConfigInitCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to --config or the default location.

An existing file is left alone unless --force is given.`,
		Args:        cli.ExactArgs(0),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			force, _ := cmd.Flags().GetBool("force")

			path := rt.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return formatter.Fail(err)
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return formatter.FailWithSuggestion(cli.Usagef("config file %s already exists", path),
					"Pass --force to overwrite it")
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return formatter.Fail(err)
			}

			if err := config.Default().Save(path); err != nil {
				return formatter.Fail(fmt.Errorf("failed to save config: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Print the effective configuration",
		Args:        cli.ExactArgs(0),
		Annotations: map[string]string{skipAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(rt.config)
			if err != nil {
				return cli.NewFormatter(cmd).Fail(err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
