package cli

import (
	"bytes"
	"errors"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testCommandSet(executed *int) (*CommandSet, *bytes.Buffer) {
	var buf bytes.Buffer
	set := NewCommandSet("tool")
	set.Printer().Redirect(&buf)
	cmd := set.AddCommand("Do Thing", "Does the thing", "d", " T ")
	cmd.Flags().String("message", "", "Sets a message")
	cmd.Usage("[FLAGS]")
	cmd.Does(func(flags *flag.FlagSet, _ *Printer) error {
		*executed++
		return nil
	})
	return set, &buf
}

func TestCommandSet_Exec(t *testing.T) {
	var executed int
	set, _ := testCommandSet(&executed)

	assert.NoError(t, set.Exec([]string{"dothing"}))
	assert.NoError(t, set.Exec([]string{"DoThing", "--message", "hi"}))
	assert.NoError(t, set.Exec([]string{"D"}), "Aliases should match case-insensitively")
	assert.NoError(t, set.Exec([]string{"t"}))
	assert.Equal(t, 4, executed)

	assert.ErrorIs(t, set.Exec(nil), ErrUnknownCommand)
	assert.ErrorIs(t, set.Exec([]string{"other"}), ErrUnknownCommand)
	assert.Equal(t, 4, executed)
}

func TestCommandSet_Help(t *testing.T) {
	var executed int
	set, buf := testCommandSet(&executed)
	for _, pattern := range HelpPatterns {
		buf.Reset()
		require.NoError(t, set.Exec([]string{pattern}))
		assert.Contains(t, buf.String(), "tool COMMAND")
		assert.Contains(t, buf.String(), "dothing, d, t   Does the thing")
	}
	assert.Equal(t, 0, executed)
}

func TestCommand_Help(t *testing.T) {
	var executed int
	set, buf := testCommandSet(&executed)
	require.NoError(t, set.Exec([]string{"dothing", "-h"}))
	assert.Equal(t, 0, executed, "Help should be printed instead of running the command")
	assert.Contains(t, buf.String(), "USAGE:\ntool dothing [FLAGS]\n")
	assert.Contains(t, buf.String(), "--message")
}

func TestCommand_DefaultPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	set := NewCommandSet("tool")
	set.Printer().Redirect(&buf)
	set.AddCommand("idle", "Has nothing to do")
	require.NoError(t, set.Exec([]string{"idle"}))
	assert.Contains(t, buf.String(), "Has nothing to do")
	assert.Contains(t, buf.String(), "FLAGS\n")
}

func TestCommand_UsageErrors(t *testing.T) {
	var buf bytes.Buffer
	set := NewCommandSet("tool")
	set.Printer().Redirect(&buf)
	errBoom := errors.New("boom")
	cmd := set.AddCommand("check", "Checks arguments")
	cmd.Does(func(flags *flag.FlagSet, _ *Printer) error {
		switch flags.Arg(0) {
		case "":
			return NewUsageError("missing argument")
		case "boom":
			return errBoom
		}
		return nil
	})

	err := set.Exec([]string{"check"})
	assert.ErrorIs(t, err, &UsageError{})
	assert.Contains(t, buf.String(), "usage error: missing argument")
	assert.Contains(t, buf.String(), "Checks arguments")

	buf.Reset()
	err = set.Exec([]string{"check", "--nope"})
	assert.ErrorIs(t, err, &UsageError{}, "Unparseable flags are a usage error")
	assert.Contains(t, buf.String(), "--nope")

	buf.Reset()
	err = set.Exec([]string{"check", "boom"})
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, &UsageError{})
	assert.Empty(t, buf.String(), "Usage should only be printed for usage errors")

	assert.NoError(t, set.Exec([]string{"check", "fine"}))
}

func TestPrinter_Redirect(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter()
	p.Redirect(&buf)
	p.Printf("%d-", 1)
	p.Println("two")
	p.Redirect(nil)
	assert.NotPanics(t, func() {
		p.Print("discarded")
	})
	assert.Equal(t, "1-two\n", buf.String())
}
