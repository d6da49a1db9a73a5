package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/log"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/store"
)

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unset <addon> <path>",
		Short:   "Remove a config value",
		GroupID: GroupValues,
		Args:    cobra.ExactArgs(2),
		Long: `Remove a config value and save.

Removing a key that the shipped defaults also define brings the
default value back on the next read.`,
		Example: `  addonconf unset myaddon deck.name
  addonconf unset myaddon tags.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, path := args[0], args[1]

			st, err := store.New(reg, id)
			if err != nil {
				return err
			}
			if _, ok := st.Delete(path); !ok {
				return fmt.Errorf("addon %q has no value at %q", id, path)
			}
			if err := st.Save(); err != nil {
				return err
			}
			log.FromContext(ctx).Verbosef("unset %s %s\n", id, path)
			return nil
		},
	}
	return cmd
}
