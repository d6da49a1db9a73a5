package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/config"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage the tool's own configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupUtility,
		Long: `Manage the tool's own configuration at ~/.addonconf/config.toml.

This is separate from the add-on configs the tool edits.`,
		Example: `  addonconf config init   # Create default config
  addonconf config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  addonconf config init      # Create config file
  addonconf config init -f   # Overwrite existing config
  addonconf config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultFileContent()

			if stdout {
				fmt.Print(content)
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  addonconf config show
  addonconf config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			effective := config.FromContext(ctx)

			if jsonOutput {
				return out.PrintJSON(effective)
			}
			return toml.NewEncoder(out.Writer()).Encode(effective)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
