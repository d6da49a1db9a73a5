package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/log"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/store"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set <addon> <path> <value>",
		Short:   "Set a config value",
		GroupID: GroupValues,
		Args:    cobra.ExactArgs(3),
		Long: `Set a config value and save.

The value is parsed as JSON; anything that does not parse is stored
as a string. Intermediate mappings on the path are created as needed.`,
		Example: `  addonconf set myaddon limit 20
  addonconf set myaddon deck.name "My Deck"
  addonconf set myaddon enabled true
  addonconf set myaddon tags '["a","b"]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, path, raw := args[0], args[1], args[2]

			st, err := store.New(reg, id)
			if err != nil {
				return err
			}
			if err := st.Set(path, parseValue(raw)); err != nil {
				return err
			}
			if err := st.Save(); err != nil {
				return err
			}
			log.FromContext(ctx).Verbosef("set %s %s\n", id, path)
			return nil
		},
	}
	return cmd
}

// parseValue interprets a command line value as JSON, falling back to
// a plain string so users can skip quoting.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
