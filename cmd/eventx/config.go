package main

import (
	"github.com/saylorsolutions/eventx/cli"
	"github.com/saylorsolutions/eventx/env"
	flag "github.com/spf13/pflag"
	"log/slog"
)

type config struct {
	scale    int
	offset   int
	below    int
	hasBelow bool
	even     bool
	level    slog.Level
}

// addRunCommand registers the run command with cmds.
// Once flags and environment variables are resolved, exec is called with the result.
func addRunCommand(cmds *cli.CommandSet, exec func(conf *config) error) *cli.Command {
	var (
		conf  config
		level string
	)
	cmd := cmds.AddCommand("run", "Reads one integer per line from STDIN, and prints the values that make it through the chain to STDOUT", "r")
	fs := cmd.Flags()
	fs.IntVarP(&conf.scale, "scale", "s", 1, "Multiplies every value [EVENTX_SCALE]")
	fs.IntVarP(&conf.offset, "offset", "o", 0, "Adds to every value, after scaling [EVENTX_OFFSET]")
	fs.IntVarP(&conf.below, "below", "b", 0, "Drops values that are not less than this [EVENTX_BELOW]")
	fs.BoolVar(&conf.even, "even", env.Bool("EVENTX_EVEN", false), "Drops odd values [EVENTX_EVEN]")
	fs.StringVar(&level, "log-level", env.Val("EVENTX_LOG_LEVEL", "info"), "Log level: debug, info, warn, or error [EVENTX_LOG_LEVEL]")
	cmd.Usage(`[FLAGS]

Stages are applied in this order: scale, offset, below, even.
A flag that isn't given falls back to the environment variable shown in brackets.`)

	cmd.Does(func(fs *flag.FlagSet, _ *cli.Printer) error {
		if fs.NArg() > 0 {
			return cli.NewUsageError("unexpected arguments %v", fs.Args())
		}
		resolved := conf
		if err := resolved.level.UnmarshalText([]byte(level)); err != nil {
			return cli.NewUsageError("invalid log level '%s'", level)
		}
		if _, err := intFlag(fs, "scale", "EVENTX_SCALE", &resolved.scale); err != nil {
			return err
		}
		if _, err := intFlag(fs, "offset", "EVENTX_OFFSET", &resolved.offset); err != nil {
			return err
		}
		hasBelow, err := intFlag(fs, "below", "EVENTX_BELOW", &resolved.below)
		if err != nil {
			return err
		}
		resolved.hasBelow = hasBelow
		return exec(&resolved)
	})
	return cmd
}

// intFlag falls back to the environment variable key when the flag wasn't given.
// Returns true if a value came from either place.
func intFlag(fs *flag.FlagSet, name, key string, target *int) (bool, error) {
	if fs.Changed(name) {
		return true, nil
	}
	val, found, err := env.Int(key)
	if err != nil {
		return false, cli.NewUsageError("%w", err)
	}
	if found {
		*target = val
	}
	return found, nil
}
