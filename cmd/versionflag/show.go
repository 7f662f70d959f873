package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/versionflag"
)

var (
	flagName        string
	flagAppVersion  string
	flagAuthor      string
	flagTheme       string
	flagConfig      string
	flagNameFG      string
	flagNameBG      string
	flagVersionFG   string
	flagAuthorFG    string
	flagPlain       bool
	flagForceColors bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a banner",
	Long: `Render a version banner the way a program using versionflag prints it.

Colors come from --theme, or else from the first theme file found in:
  --config <path>, ~/.config/versionflag/theme.yaml, ./versionflag.yaml
Individual colors can be overridden with #RRGGBB or #RGB values.

Examples:
  versionflag show --name myapp --app-version 1.2.3 --author "Jane Doe"
  versionflag show --theme pastel --author-color "#F80"
  versionflag show --config ./theme.yaml --plain`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagName, "name", "myapp", "Package name")
	showCmd.Flags().StringVar(&flagAppVersion, "app-version", "1.0.0", "Package version")
	showCmd.Flags().StringVar(&flagAuthor, "author", "Jane Doe", "Author line")
	showCmd.Flags().StringVarP(&flagTheme, "theme", "t", "", "Theme preset name (see 'versionflag themes')")
	showCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a theme file")
	showCmd.Flags().StringVar(&flagNameFG, "name-fg", "", "Name foreground color")
	showCmd.Flags().StringVar(&flagNameBG, "name-bg", "", "Name background color")
	showCmd.Flags().StringVar(&flagVersionFG, "version-color", "", "Version color")
	showCmd.Flags().StringVar(&flagAuthorFG, "author-color", "", "Author color")
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
	showCmd.Flags().BoolVar(&flagForceColors, "force-colors", false, "Always emit 24-bit colors")
	showCmd.MarkFlagsMutuallyExclusive("theme", "config")
	showCmd.MarkFlagsMutuallyExclusive("plain", "force-colors")
}

func runShow(cmd *cobra.Command, _ []string) error {
	base, err := selectTheme(flagTheme, flagConfig)
	if err != nil {
		return err
	}

	t := base.Overlay(versionflag.Theme{
		NameFG:  flagNameFG,
		NameBG:  flagNameBG,
		Version: flagVersionFG,
		Author:  flagAuthorFG,
	})

	b, err := versionflag.New(flagName, flagAppVersion, flagAuthor).WithTheme(t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case flagPlain:
		_, err = fmt.Fprintln(out, b.PlainString())
	case flagForceColors:
		_, err = fmt.Fprintln(out, b.ColoredString())
	default:
		err = b.Fprint(out)
	}
	return err
}

// selectTheme returns the named preset, or the theme found by the config search.
func selectTheme(name, path string) (versionflag.Theme, error) {
	if name != "" {
		return versionflag.LookupTheme(name)
	}
	return versionflag.LoadTheme(path)
}
