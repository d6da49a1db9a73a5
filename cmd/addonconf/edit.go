package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/config"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/extedit"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/form"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/history"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/log"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/store"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui"
)

func newEditCmd() *cobra.Command {
	var external bool

	cmd := &cobra.Command{
		Use:     "edit [addon]",
		Short:   "Edit an add-on's configuration",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Edit an add-on's configuration in a terminal form.

Without an argument, an interactive selector lists all add-ons with
the most recently edited first. Add-ons shipping a config.form.json
get the declared layout; others get a form derived from their default
values. Stored configs that fail validation open in a raw JSON editor
until they parse and validate again.`,
		Example: `  addonconf edit               # Pick an add-on interactively
  addonconf edit reviewheatmap # Edit a specific add-on
  addonconf edit -e myaddon    # Open config.json in $EDITOR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !isTerminal() {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			var id string
			if len(args) == 1 {
				id = args[0]
				if _, err := reg.Meta(id); err != nil {
					return err
				}
			} else {
				picked, err := selectAddon()
				if err != nil {
					return err
				}
				if picked == "" {
					return nil
				}
				id = picked
			}

			// An add-on can replace the stock surface entirely.
			if action := reg.OpenAction(id); action != nil {
				return action()
			}

			if external {
				return editExternal(ctx, id)
			}
			return editForm(ctx, id)
		},
	}

	cmd.Flags().BoolVarP(&external, "external", "e", false, "Open config.json in $EDITOR instead of the form")

	return cmd
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// selectAddon shows the interactive selector, most recently edited
// add-ons first. Returns "" when the user cancels.
func selectAddon() (string, error) {
	ids, err := reg.List()
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("no add-ons in %s", reg.Dir())
	}

	h, err := history.Load()
	if err != nil {
		h = &history.History{}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		ri, rj := h.Rank(ids[i]), h.Rank(ids[j])
		if ri < 0 {
			return false
		}
		if rj < 0 {
			return true
		}
		return ri < rj
	})

	choices := make([]ui.Choice, 0, len(ids))
	for _, id := range ids {
		meta, err := reg.Meta(id)
		if err != nil {
			continue
		}
		choices = append(choices, ui.Choice{ID: id, Name: meta.HumanName()})
	}

	result, err := ui.RunSelector(choices)
	if err != nil {
		return "", err
	}
	if !result.Selected {
		return "", nil
	}
	return result.Choice.ID, nil
}

func editForm(ctx context.Context, id string) error {
	l := log.FromContext(ctx)

	st, err := store.New(reg, id)
	if err != nil {
		return err
	}

	cfg := config.FromContext(ctx)
	sess := form.NewSession(st)
	sess.SetRawIndent(cfg.Editor.RawIndent)

	spec, err := reg.Form(id)
	if err != nil {
		return err
	}
	if spec != nil {
		if err := form.BuildFromSpec(sess, spec); err != nil {
			return err
		}
	} else {
		form.BuildAuto(sess)
	}

	// An invalid stored config is not fatal here; the model starts in
	// the raw editor instead.
	if err := sess.Open(); err != nil {
		l.Verbosef("stored config invalid: %v\n", err)
	}

	outcome, err := form.NewModel(sess).WithWidth(cfg.Editor.Width).Run()
	if err != nil {
		return err
	}
	if rerr := history.RecordEdit(id); rerr != nil {
		l.Verbosef("record history: %v\n", rerr)
	}

	switch outcome {
	case form.StateSaved:
		l.Printf("Saved configuration for %s\n", st.HumanName())
	default:
		l.Verbosef("Edit cancelled, no changes saved\n")
	}
	return nil
}

// editExternal opens the add-on's config.json in the user's editor.
// The effective config is written out first so the user edits a
// complete document, not just their overrides.
func editExternal(ctx context.Context, id string) error {
	l := log.FromContext(ctx)

	st, err := store.New(reg, id)
	if err != nil {
		return err
	}
	path := filepath.Join(reg.Dir(), id, "config.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := st.Save(); err != nil {
			return err
		}
	}

	if err := extedit.Open(ctx, path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read edited config: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s is not valid JSON after editing", path)
	}
	if rerr := history.RecordEdit(id); rerr != nil {
		l.Verbosef("record history: %v\n", rerr)
	}
	l.Printf("Saved configuration for %s\n", st.HumanName())
	return nil
}
