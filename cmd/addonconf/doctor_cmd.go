package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/doctor"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/output"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check add-ons for broken configuration files",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Check every add-on for unparseable manifests, broken default
trees, invalid user configs and form descriptors referencing keys
without defaults.`,
		Example: `  addonconf doctor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			issues, err := doctor.Run(reg)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				out.Println("All add-ons look healthy")
				return nil
			}
			for _, issue := range issues {
				out.Println(issue.String())
			}
			return fmt.Errorf("%d issue(s) found", len(issues))
		},
	}
	return cmd
}
