package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/versionflag"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in color themes",
	Long:  `Shows every registered theme next to a sample banner drawn in it.`,
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func runThemes(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	themes := versionflag.Themes()
	sample := versionflag.New("myapp", "1.2.3", "Jane Doe")

	fmt.Fprintln(out, "Available themes:")
	fmt.Fprintln(out)

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, t := range themes {
		maxNameLen = max(maxNameLen, len(t.Name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Sample")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "------")

	for _, t := range themes {
		b, err := sample.WithTheme(t.Theme)
		if err != nil {
			return fmt.Errorf("theme %s: %w", t.Name, err)
		}
		fmt.Fprintf(out, "  %-*s  ", maxNameLen, t.Name)
		if err := b.Fprint(out); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'versionflag show --theme <name>' to try one.")
	return nil
}
