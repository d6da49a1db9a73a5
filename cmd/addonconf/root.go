package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/config"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/log"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/output"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg *config.Config
	reg *addons.DirRegistry
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupValues  = "values"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "addonconf",
	Short: "Edit add-on configuration through forms or the raw editor",
	Long: `addonconf edits the JSON configuration of installed add-ons.

Add-ons live in a directory of subfolders, each shipping its defaults
as config.default.json and optionally a form layout as
config.form.json. Values are edited in a terminal form with typed
fields; configs that fail validation open in a raw JSON editor
instead.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg
	styles.Apply(cfg.Theme)

	reg = addons.NewDir(cfg.AddonsDir)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	var logOut io.Writer = os.Stderr
	if quiet {
		logOut = io.Discard
	}
	logger := log.New(logOut, verbose)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	ctx = config.WithConfig(ctx, cfg)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'addonconf -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupValues, Title: "Value Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newListCmd())

	// Value commands
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newUnsetCmd())
	rootCmd.AddCommand(newResetCmd())

	// Utility commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
