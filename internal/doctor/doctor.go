// Package doctor performs diagnostic checks over the addons
// directory: unparseable manifests, broken default trees, invalid
// user configs and form descriptors whose keys point nowhere.
package doctor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/confpath"
)

// IssueCategory groups issues by the file they concern.
type IssueCategory string

const (
	// CategoryManifest represents problems with manifest.json.
	CategoryManifest IssueCategory = "manifest"
	// CategoryDefaults represents problems with config.default.json.
	CategoryDefaults IssueCategory = "defaults"
	// CategoryConfig represents problems with the user's config.json.
	CategoryConfig IssueCategory = "config"
	// CategoryForm represents problems with config.form.json.
	CategoryForm IssueCategory = "form"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Addon       string        // add-on ID
	Category    IssueCategory // which file the issue concerns
	Description string        // human-readable description
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s]: %s", i.Addon, i.Category, i.Description)
}

// Run checks every add-on in the registry and returns the issues
// found. A clean directory returns an empty slice.
func Run(reg *addons.DirRegistry) ([]Issue, error) {
	ids, err := reg.List()
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, id := range ids {
		issues = append(issues, checkAddon(reg, id)...)
	}
	return issues, nil
}

func checkAddon(reg *addons.DirRegistry, id string) []Issue {
	var issues []Issue

	if _, err := reg.Meta(id); err != nil {
		issues = append(issues, Issue{
			Addon:       id,
			Category:    CategoryManifest,
			Description: err.Error(),
		})
	}

	defaults, err := reg.FetchDefaults(id)
	if err != nil {
		issues = append(issues, Issue{
			Addon:       id,
			Category:    CategoryDefaults,
			Description: err.Error(),
		})
		defaults = map[string]any{}
	}

	issues = append(issues, checkUserConfig(reg, id)...)
	issues = append(issues, checkForm(reg, id, defaults)...)
	return issues
}

// checkUserConfig reads config.json directly so syntax errors surface
// with the parser's message instead of being masked by default
// merging.
func checkUserConfig(reg *addons.DirRegistry, id string) []Issue {
	path := filepath.Join(reg.Dir(), id, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return []Issue{{Addon: id, Category: CategoryConfig, Description: err.Error()}}
	}

	if !gjson.ValidBytes(data) {
		return []Issue{{
			Addon:       id,
			Category:    CategoryConfig,
			Description: "config.json is not valid JSON",
		}}
	}
	tree := map[string]any{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return []Issue{{
			Addon:       id,
			Category:    CategoryConfig,
			Description: fmt.Sprintf("config.json is not a JSON object: %v", err),
		}}
	}
	return nil
}

// checkForm validates the descriptor and verifies that every declared
// key resolves in the default tree, so the form never binds to keys
// an add-on update removed.
func checkForm(reg *addons.DirRegistry, id string, defaults map[string]any) []Issue {
	spec, err := reg.Form(id)
	if err != nil {
		return []Issue{{Addon: id, Category: CategoryForm, Description: err.Error()}}
	}
	if spec == nil {
		return nil
	}

	var issues []Issue
	for _, tab := range spec.Tabs {
		for _, f := range tab.Fields {
			if f.Key == "" {
				continue
			}
			if !confpath.Contains(defaults, f.Key) {
				issues = append(issues, Issue{
					Addon:       id,
					Category:    CategoryForm,
					Description: fmt.Sprintf("field %q has no default value", f.Key),
				})
			}
		}
	}
	return issues
}
