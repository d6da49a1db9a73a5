package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/confpath"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/output"
)

func newGetCmd() *cobra.Command {
	var fromDefaults bool

	cmd := &cobra.Command{
		Use:     "get <addon> <path>",
		Short:   "Print a config value",
		GroupID: GroupValues,
		Args:    cobra.ExactArgs(2),
		Long: `Print a config value as JSON.

The path is a dotted key path; numeric segments index into lists.`,
		Example: `  addonconf get myaddon limit
  addonconf get myaddon deck.name
  addonconf get myaddon tags.0
  addonconf get myaddon limit --default  # shipped default value`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, path := args[0], args[1]

			if _, err := reg.Meta(id); err != nil {
				return err
			}

			var (
				tree map[string]any
				err  error
			)
			if fromDefaults {
				tree, err = reg.FetchDefaults(id)
			} else {
				tree, err = reg.FetchConfig(id)
			}
			if err != nil {
				return err
			}

			v, err := confpath.Resolve(tree, path)
			if err != nil {
				if errors.Is(err, confpath.ErrPathNotFound) {
					return fmt.Errorf("addon %q has no value at %q", id, path)
				}
				return err
			}
			return output.FromContext(ctx).PrintJSON(v)
		},
	}

	cmd.Flags().BoolVar(&fromDefaults, "default", false, "Read from the shipped defaults instead of the effective config")

	return cmd
}
