package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/output"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List installed add-ons",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Example: `  addonconf list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ids, err := reg.List()
			if err != nil {
				return err
			}
			out := output.FromContext(ctx)
			if len(ids) == 0 {
				out.Println("No add-ons in", reg.Dir())
				return nil
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFORM")
			for _, id := range ids {
				meta, err := reg.Meta(id)
				if err != nil {
					continue
				}
				formCol := "-"
				if spec, err := reg.Form(id); err == nil && spec != nil {
					formCol = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", id, meta.HumanName(), formCol)
			}
			return w.Flush()
		},
	}
	return cmd
}
