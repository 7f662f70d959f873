// versionflag previews and configures colorized version banners.
//
// Usage:
//
//	versionflag themes         - List built-in themes with a sample banner
//	versionflag show           - Render a banner from flags or a theme file
//	versionflag pick           - Choose a theme interactively and print it as YAML
//	versionflag -V             - Print this tool's own banner
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/versionflag"
)

//go:embed version.yaml
var manifest []byte

var (
	// Global flags
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "versionflag"})

func main() {
	banner := versionflag.MustManifest(manifest)
	if _, err := versionflag.Execute(rootCmd, banner); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "versionflag",
	Short: "Colorized version banners for command-line tools",
	Long: `versionflag renders the "name vX.Y.Z by author" banner that programs
using the versionflag library print for -V and --version.

Available commands:
  themes   - Show the built-in color themes
  show     - Render a banner with chosen colors
  pick     - Pick a theme interactively

Examples:
  versionflag themes
  versionflag show --name myapp --app-version 1.2.3 --author "Jane Doe"
  versionflag show --theme neon
  versionflag pick > versionflag.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pickCmd)
}

// setupLogging applies --log-level to this command and to the library.
func setupLogging(_ *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)
	versionflag.SetLogger(logger)
	return nil
}
