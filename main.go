package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Display toggles (flag overrides on top of the config file)
	showAll      bool
	simpleFormat bool
	noIcons      bool
	fuzzyTime    bool

	// Output
	copyToClipboard bool

	cfgFile string // Optional explicit config file path
)

// version is the application version, set via ldflags.
var version string = "dev" // Default for local builds

var rootCmd = &cobra.Command{
	Use:   "yal [PATH]",
	Short: "yal is a friendly directory lister with icons and fuzzy ages.",
	Long: `yal lists the contents of a directory with file-type icons, permission
bits, owner/group names, and a fuzzy modification age, laid out in aligned
color columns. Without a PATH argument it lists the current directory.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show hidden entries (names starting with '.')")
	rootCmd.Flags().BoolVar(&simpleFormat, "simple", false, "Plain inline list instead of aligned columns")
	rootCmd.Flags().BoolVar(&noIcons, "no-icons", false, "Hide file-type icons")
	rootCmd.Flags().BoolVar(&fuzzyTime, "fuzzy", true, "Fuzzy relative ages instead of the fixed breakdown")
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Also copy the (uncolored) listing to the clipboard")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Config file (default is the first yal.conf found)")
}

// run performs one listing pass: load config, resolve, sort, render.
func run(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Flags override the config file only when explicitly set, so the
	// file keeps providing defaults for everything else.
	if cmd.Flags().Changed("all") {
		cfg.ShowHidden = showAll
	}
	if cmd.Flags().Changed("simple") {
		cfg.ColumnFormat = !simpleFormat
	}
	if cmd.Flags().Changed("no-icons") {
		cfg.ShowIcons = !noIcons
	}
	if cmd.Flags().Changed("fuzzy") {
		cfg.UseFuzzyTime = fuzzyTime
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	dir, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving path %s: %w", target, err)
	}

	cache := loadIdentityCache()
	entries, err := resolveEntries(dir, cache, cfg)
	if err != nil {
		return err
	}
	sortEntries(entries, cfg)

	for _, line := range renderListing(dir, entries, cfg) {
		fmt.Println(line)
	}

	if copyToClipboard {
		// Re-render without escape sequences; colored text is useless
		// outside a terminal.
		prev := color.NoColor
		color.NoColor = true
		plain := strings.Join(renderListing(dir, entries, cfg), "\n") + "\n"
		color.NoColor = prev

		if err := clipboard.WriteAll(plain); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
		} else {
			fmt.Println("Listing copied to clipboard.")
		}
	}

	return nil
}

func main() {
	rootCmd.Execute()
}
