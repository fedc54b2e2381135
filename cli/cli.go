package cli

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"io"
	"slices"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h"} // HelpPatterns are the arguments that make a [CommandSet] print its usage information.
)

// CommandFunc is the work done by a [Command], called once its flags have been parsed.
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is a named entry in a [CommandSet], with its own flags.
type Command struct {
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	path       string
	shortUsage string
	usage      string
	printer    *Printer
	aliases    []string
}

func cleanseKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), "")
}

func newCommand(key, parent, shortUsage string, printer *Printer) *Command {
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	// Parse errors are reported through the Printer by Exec.
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.BoolP("help", "h", false, "Prints this usage information")
	path := key
	if len(parent) > 0 {
		path = parent + " " + key
	}
	cmd := &Command{
		flags:      fs,
		key:        key,
		path:       path,
		shortUsage: shortUsage,
		printer:    printer,
	}
	cmd.exec = func(_ *flag.FlagSet, _ *Printer) error {
		cmd.PrintUsage()
		return nil
	}
	return cmd
}

// Does specifies the [CommandFunc] run by this [Command].
// A nil commandFunc is ignored.
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Path returns the full invocation of this [Command], including the name of its [CommandSet].
func (c *Command) Path() string {
	return c.path
}

// Flags returns the [flag.FlagSet] for this [Command], so flags can be defined before it's executed.
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage sets a longer description of how to invoke the [Command].
// The command's path is prepended, so the text should start with what follows the command name.
//
//	cmd.Usage("[FLAGS] FILE")
func (c *Command) Usage(format string, args ...any) *Command {
	text := fmt.Sprintf(format, args...)
	if len(text) == 0 {
		c.usage = ""
		return c
	}
	c.usage = c.path + " " + text
	return c
}

// PrintUsage writes the short description, usage text, and flag usages to the [Printer].
func (c *Command) PrintUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage)
	buf.WriteString("\n")
	if len(c.usage) > 0 {
		buf.WriteString("\nUSAGE:\n")
		buf.WriteString(c.usage)
		if !strings.HasSuffix(c.usage, "\n") {
			buf.WriteString("\n")
		}
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	c.printer.Print(buf.String())
}

// Printer returns the [Printer] this [Command] writes to.
func (c *Command) Printer() *Printer {
	return c.printer
}

// Exec parses args as flags and runs the [CommandFunc].
// Usage is printed instead if a help flag is given.
// If flags can't be parsed, or the CommandFunc returns a [UsageError], the error is printed with usage information and returned.
func (c *Command) Exec(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return c.failUsage(NewUsageError("%w", err))
	}
	if help, _ := c.flags.GetBool("help"); help {
		c.PrintUsage()
		return nil
	}
	err := c.exec(c.flags, c.printer)
	if err != nil && errors.Is(err, &UsageError{}) {
		return c.failUsage(err)
	}
	return err
}

func (c *Command) failUsage(err error) error {
	c.printer.Println(err)
	c.printer.Println()
	c.PrintUsage()
	return err
}

// CommandSet is the root of a CLI, holding the [Command] entries a user may invoke.
type CommandSet struct {
	name     string
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
}

// NewCommandSet creates an empty [CommandSet].
// The name should be how the CLI is invoked, and is used in usage information.
func NewCommandSet(name string) *CommandSet {
	return &CommandSet{name: name, printer: NewPrinter()}
}

// Printer returns the [Printer] shared by every [Command] in this set.
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// AddCommand adds a [Command] to this set.
// The key is normalized to lower case without spaces, and so are any aliases.
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	cmd := newCommand(key, s.name, shortUsage, s.Printer())
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Exec runs the [Command] named by the first argument, passing it the rest.
// Commands are matched case-insensitively, by key or alias.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		s.PrintUsage()
		return fmt.Errorf("%w: no command given", ErrUnknownCommand)
	}
	if slices.Contains(HelpPatterns, args[0]) {
		s.PrintUsage()
		return nil
	}
	key := cleanseKey(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
	}
	if !ok {
		s.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return cmd.Exec(args[1:])
}

// PrintUsage writes the invocation form and the list of commands to the [Printer].
func (s *CommandSet) PrintUsage() {
	s.Printer().Printf("USAGE:\n%s COMMAND [FLAGS] [ARGS]\n\nCOMMANDS\n%s", s.name, s.CommandUsages())
}

// CommandUsages lists each [Command] with its aliases and short description, sorted by key.
func (s *CommandSet) CommandUsages() string {
	keys := make([]string, 0, len(s.commands))
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	names := make([]string, len(keys))
	var maxLen int
	for i, key := range keys {
		names[i] = strings.Join(append([]string{key}, s.commands[key].aliases...), ", ")
		maxLen = max(maxLen, len(names[i]))
	}
	var buf strings.Builder
	for i, key := range keys {
		_, _ = fmt.Fprintf(&buf, "  %-*s   %s\n", maxLen, names[i], s.commands[key].shortUsage)
	}
	return buf.String()
}
