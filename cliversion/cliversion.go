// Package cliversion plugs a versionflag banner into a urfave/cli v3 command.
//
//	cmd := &cli.Command{Name: "myapp"}
//	cliversion.Install(cmd, banner)
//	err := cmd.Run(ctx, os.Args)
package cliversion

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vovakirdan/versionflag"
)

// Flag returns a --version/-V flag that prints b to the root command's
// writer and exits 0. The flag is inherited by subcommands.
func Flag(b versionflag.Banner) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    versionflag.FlagName,
		Aliases: []string{versionflag.FlagShorthand},
		Usage:   "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command, set bool) error {
			if !set {
				return nil
			}
			if err := b.Fprint(cmd.Root().Writer); err != nil {
				versionflag.Logger().Error("cannot print version", "error", err)
				cli.OsExiter(1)
				return err
			}
			cli.OsExiter(0)
			return nil
		},
	}
}

// Install hides cli's own version flag on cmd and appends Flag(b).
func Install(cmd *cli.Command, b versionflag.Banner) {
	cmd.HideVersion = true
	cmd.Flags = append(cmd.Flags, Flag(b))
}
