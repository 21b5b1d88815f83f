package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// splitUnknownFlags walks args the way cobra will and takes out the flags
// that no command on the path defines. An unknown flag is dropped alone:
// the argument after it is never treated as its value.
func splitUnknownFlags(root *cobra.Command, args []string) (kept, unknown []string) {
	initDefaultFlags(root)
	cmd := root
	positional := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			kept = append(kept, args[i:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			if !positional {
				if sub := findSubcommand(cmd, arg); sub != nil {
					cmd = sub
					kept = append(kept, arg)
					continue
				}
				positional = true
			}
			kept = append(kept, arg)
			continue
		}

		name, flag, inline := lookupFlag(cmd, arg)
		if flag == nil {
			unknown = append(unknown, name)
			continue
		}
		kept = append(kept, arg)
		// --config PATH: значение идёт следующим аргументом
		if !inline && flag.NoOptDefVal == "" && i+1 < len(args) {
			i++
			kept = append(kept, args[i])
		}
	}
	return kept, unknown
}

// lookupFlag resolves "--name[=v]" or "-n[v]" against every flag set cmd
// sees. inline is true when the value is part of arg.
func lookupFlag(cmd *cobra.Command, arg string) (name string, flag *pflag.Flag, inline bool) {
	sets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()}
	if long, ok := strings.CutPrefix(arg, "--"); ok {
		long, _, inline = strings.Cut(long, "=")
		for _, fs := range sets {
			if f := fs.Lookup(long); f != nil {
				return "--" + long, f, inline
			}
		}
		return "--" + long, nil, inline
	}
	short := arg[1:2]
	for _, fs := range sets {
		if f := fs.ShorthandLookup(short); f != nil {
			return "-" + short, f, len(arg) > 2
		}
	}
	return "-" + short, nil, len(arg) > 2
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}

// initDefaultFlags adds --help, --version and the help command up front;
// cobra would add them only while executing.
func initDefaultFlags(root *cobra.Command) {
	root.InitDefaultHelpCmd()
	root.InitDefaultVersionFlag()
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.InitDefaultHelpFlag()
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
}
