package versionflag

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// FlagName is the long form of the version flag.
	FlagName = "version"

	// FlagShorthand is the short form of the version flag.
	FlagShorthand = "V"

	// FlagAnnotation marks the flag registered by this package, so it can be
	// told apart from a "version" flag defined by anyone else.
	FlagAnnotation = "versionflag_version"

	flagUsage = "Print version information"
)

// ErrFlagConflict is returned by Register when the command already defines a
// different "version" flag or "V" shorthand.
var ErrFlagConflict = errors.New("version flag conflict")

// flagValue is the pflag.Value behind the version flag. It behaves like a
// bool flag; when eager is set, parsing a true value prints the banner and
// exits right away.
type flagValue struct {
	set    bool
	banner Banner
	eager  bool
	cmd    *cobra.Command
}

func (v *flagValue) String() string { return strconv.FormatBool(v.set) }

func (v *flagValue) Type() string { return "bool" }

func (v *flagValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.set = b
	if b && v.eager {
		printAndExit(v.cmd.OutOrStdout(), v.banner)
	}
	return nil
}

// reset clears the result of an earlier parse of root.
func (v *flagValue) reset(root *cobra.Command) {
	v.set = false
	if f := root.PersistentFlags().Lookup(FlagName); f != nil {
		f.Changed = false
	}
}

// Register adds a persistent -V/--version bool flag to root, so it is
// recognized on every subcommand, and disables cobra's built-in version flag
// by clearing Version on the whole command tree.
//
// Registering twice updates the banner. After parsing, use Requested or
// CheckAndExit to act on the flag.
func Register(root *cobra.Command, b Banner) error {
	_, err := register(root, b, false)
	return err
}

func register(root *cobra.Command, b Banner, eager bool) (*flagValue, error) {
	disableBuiltinVersion(root)

	if v := lookupValue(root); v != nil {
		v.banner = b
		v.eager = eager
		v.cmd = root
		return v, nil
	}

	if err := checkConflicts(root); err != nil {
		return nil, err
	}

	v := &flagValue{banner: b, eager: eager, cmd: root}
	f := root.PersistentFlags().VarPF(v, FlagName, FlagShorthand, flagUsage)
	f.NoOptDefVal = "true"
	if err := root.PersistentFlags().SetAnnotation(FlagName, FlagAnnotation, []string{"true"}); err != nil {
		return nil, fmt.Errorf("versionflag: annotate flag: %w", err)
	}

	Logger().Debug("registered version flag", "command", root.Name(), "eager", eager)
	return v, nil
}

// checkConflicts reports flags anywhere in the tree that would clash with
// --version or -V once the persistent flag is merged into subcommands.
func checkConflicts(root *cobra.Command) error {
	var conflict error
	walk(root, func(c *cobra.Command) {
		if conflict != nil {
			return
		}
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			if f := fs.Lookup(FlagName); f != nil {
				conflict = fmt.Errorf("versionflag: command %q already defines --%s: %w", c.Name(), FlagName, ErrFlagConflict)
				return
			}
			if f := fs.ShorthandLookup(FlagShorthand); f != nil {
				conflict = fmt.Errorf("versionflag: command %q already uses -%s for --%s: %w", c.Name(), FlagShorthand, f.Name, ErrFlagConflict)
				return
			}
		}
	})
	return conflict
}

// disableBuiltinVersion clears Version on every command; cobra only adds its
// own version flag to commands with a non-empty Version.
func disableBuiltinVersion(root *cobra.Command) {
	walk(root, func(c *cobra.Command) {
		c.Version = ""
	})
}

func walk(c *cobra.Command, fn func(*cobra.Command)) {
	fn(c)
	for _, sub := range c.Commands() {
		walk(sub, fn)
	}
}

// lookupValue finds the flag registered by this package on cmd or its parents.
func lookupValue(cmd *cobra.Command) *flagValue {
	for c := cmd; c != nil; c = c.Parent() {
		f := c.PersistentFlags().Lookup(FlagName)
		if f == nil {
			continue
		}
		if _, ok := f.Annotations[FlagAnnotation]; !ok {
			return nil
		}
		if v, ok := f.Value.(*flagValue); ok {
			return v
		}
		return nil
	}
	return nil
}

// Requested reports whether the version flag was given when cmd was parsed.
func Requested(cmd *cobra.Command) bool {
	v := lookupValue(cmd)
	return v != nil && v.set
}

// CheckAndExit prints b to cmd's output and exits with status 0 if the
// version flag was given. Otherwise it returns.
func CheckAndExit(cmd *cobra.Command, b Banner) {
	if Requested(cmd) {
		printAndExit(cmd.OutOrStdout(), b)
	}
}

// Parse registers the version flag on root, resolves the subcommand named by
// args and parses its flags. If the version flag is present, b is printed and
// the process exits before arguments, required flags or flag groups are
// validated. Otherwise the resolved command is validated and returned; the
// caller runs it.
//
// Use Parse when the program drives the command itself; use Execute to let
// cobra run it.
func Parse(root *cobra.Command, b Banner, args []string) (*cobra.Command, error) {
	v, err := register(root, b, false)
	if err != nil {
		return nil, err
	}
	v.reset(root)

	cmd, flags, err := root.Find(args)
	if err != nil {
		return root, err
	}

	cmd.InitDefaultHelpFlag()
	if err := cmd.ParseFlags(flags); err != nil {
		return cmd, err
	}

	if Requested(cmd) {
		printAndExit(cmd.OutOrStdout(), b)
		return cmd, nil
	}

	if help, err := cmd.Flags().GetBool("help"); err == nil && help {
		return cmd, pflag.ErrHelp
	}

	if err := cmd.ValidateArgs(cmd.Flags().Args()); err != nil {
		return cmd, err
	}
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return cmd, err
	}
	if err := cmd.ValidateFlagGroups(); err != nil {
		return cmd, err
	}

	return cmd, nil
}

// Execute registers the version flag on root and runs root.ExecuteC.
// The flag is eager: as soon as cobra parses -V or --version the banner is
// printed and the process exits 0, before argument validation and before
// any Run or PreRun hook.
func Execute(root *cobra.Command, b Banner) (*cobra.Command, error) {
	if _, err := register(root, b, true); err != nil {
		return nil, err
	}
	return root.ExecuteC()
}
