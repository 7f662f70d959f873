// Package kongversion plugs a versionflag banner into a kong parser.
//
//	var cli struct {
//		Version kongversion.Flag `short:"V" help:"Print version information."`
//	}
//
//	parser := kong.Must(&cli, kongversion.Bind(banner))
//	ctx, err := parser.Parse(os.Args[1:])
package kongversion

import (
	"github.com/alecthomas/kong"

	"github.com/vovakirdan/versionflag"
)

// Flag prints the bound banner and exits when present on the command line.
type Flag bool

// BeforeApply runs as soon as kong has traced the flag, before positional
// arguments and required flags are validated.
func (*Flag) BeforeApply(ctx *kong.Context, b versionflag.Banner) error {
	if err := b.Fprint(ctx.Kong.Stdout); err != nil {
		versionflag.Logger().Error("cannot print version", "error", err)
		ctx.Kong.Exit(1)
		return err
	}
	ctx.Kong.Exit(0)
	return nil
}

// Bind makes b available to Flag. Without it kong reports a missing binding
// when the flag is used.
func Bind(b versionflag.Banner) kong.Option {
	return kong.Bind(b)
}
