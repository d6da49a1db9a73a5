package main

import (
	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/log"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/store"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reset <addon> [path]",
		Short:   "Reset configuration to the shipped defaults",
		GroupID: GroupValues,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Reset configuration to the shipped defaults and save.

Without a path, the whole config is replaced by the defaults. With a
path, only that value is reset.`,
		Example: `  addonconf reset myaddon         # whole config
  addonconf reset myaddon limit   # single value`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, err := store.New(reg, id)
			if err != nil {
				return err
			}

			if len(args) == 2 {
				path := args[1]
				def, err := st.GetDefault(path)
				if err != nil {
					return err
				}
				if err := st.Set(path, def); err != nil {
					return err
				}
			} else {
				st.ResetToDefault()
			}

			if err := st.Save(); err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Reset %s to defaults\n", st.HumanName())
			return nil
		},
	}
	return cmd
}
