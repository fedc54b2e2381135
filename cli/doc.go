/*
Package cli is a small framework for CLIs made of named commands, built on [pflag].

  - User-visible output goes to STDERR by default, through a redirectable [Printer].
  - Flags are NOT interspersed with arguments, which keeps parsing predictable.
  - Every [Command] gets '-h' and '--help' flags that print its usage information.

# Invocation

A CLI using this package is always invoked in this form:

	CLI_NAME COMMAND [FLAGS...] [ARGS...]

Calling CLI_NAME with no command, or with '-h' or '--help', prints the available commands.

# Usage errors

A [CommandFunc] may return a [UsageError] (see [NewUsageError]) when the user has given something the command can't work with.
The error is printed along with the command's usage information, and returned from [CommandSet.Exec] so the caller can pick an exit code.
Other errors are returned as-is, without printing usage.

[pflag]: https://github.com/spf13/pflag
*/
package cli
