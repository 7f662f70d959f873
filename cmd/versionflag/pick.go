package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/versionflag"
	"github.com/vovakirdan/versionflag/internal/config"
	"github.com/vovakirdan/versionflag/internal/picker"
	"github.com/vovakirdan/versionflag/internal/theme"
)

var (
	flagPickStart  string
	flagPickOutput string
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a theme interactively",
	Long: `Browse the built-in themes with a live preview and print the chosen one
as a theme file.

Controls:
  Up/Down/j/k  - Move between themes
  Enter/Space  - Choose
  ?            - Toggle help
  Q/Esc        - Quit without choosing

Examples:
  versionflag pick > versionflag.yaml
  versionflag pick --output ~/.config/versionflag/theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVar(&flagPickStart, "start", theme.DefaultName, "Theme highlighted first")
	pickCmd.Flags().StringVarP(&flagPickOutput, "output", "o", "", "Write the theme file here instead of stdout")
}

func runPick(cmd *cobra.Command, _ []string) error {
	// The picker draws on the terminal; stdout may still be redirected to a file.
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		return errors.New("pick needs an interactive terminal")
	}

	sample := versionflag.New(flagName, flagAppVersion, flagAuthor)
	items := versionflag.Themes()

	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w < len(sample.PlainString())+16 {
		logger.Warn("terminal is narrower than the preview", "width", w)
	}

	result, err := picker.Run(items, sample, flagPickStart,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)
	if err != nil {
		return err
	}
	if result.Quit {
		logger.Info("no theme chosen")
		return nil
	}

	data, err := config.MarshalTheme(config.ThemeFile{Preset: result.Theme.Name})
	if err != nil {
		return err
	}

	if flagPickOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flagPickOutput, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	logger.Info("theme saved", "preset", result.Theme.Name, "path", flagPickOutput)
	return nil
}
