package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/eventx/cli"
	"github.com/saylorsolutions/eventx/event"
	"github.com/saylorsolutions/eventx/signalx"
	"github.com/saylorsolutions/eventx/subject"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"
)

func main() {
	ctx, cancel := signalx.SignalCtx(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, &cli.UsageError{}), errors.Is(err, cli.ErrUnknownCommand):
		// Usage information has already been printed.
		os.Exit(2)
	default:
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cmds := cli.NewCommandSet("eventx")
	cmds.Printer().Redirect(errOut)
	addRunCommand(cmds, func(conf *config) error {
		return pipe(ctx, conf, in, out, errOut)
	})
	return cmds.Exec(args)
}

// pipe sends each integer read from in through the chain described by conf, and prints what comes out to out.
// It returns once in is exhausted or ctx is cancelled, after every value that made it through has been printed.
func pipe(ctx context.Context, conf *config, in io.Reader, out, errOut io.Writer) error {
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: conf.level}))
	sink := event.NewSink[int](subject.WithLogger(logger), subject.WithName("stdin"))
	it := buildChain(sink, conf)

	printed := make(chan int)
	go func() {
		var count int
		defer func() {
			printed <- count
		}()
		for val := range it.All() {
			_, _ = fmt.Fprintln(out, val)
			count++
		}
	}()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	interactive := isTerminal(in)
	if interactive {
		_, _ = fmt.Fprintln(errOut, "Enter one integer per line. Press Ctrl+D to finish.")
	}
	var sent, skipped int
loop:
	for {
		select {
		case <-ctx.Done():
			logger.Info("Interrupted, closing the chain")
			break loop
		case line, more := <-lines:
			if !more {
				break loop
			}
			line = strings.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			val, err := strconv.Atoi(line)
			if err != nil {
				logger.Warn("Skipping line that isn't an integer", "line", line, "error", err)
				skipped++
				continue
			}
			sink.Send(val)
			sent++
		}
	}
	sink.Close()
	count := <-printed
	logger.Debug("Finished", "sent", sent, "skipped", skipped, "printed", count)

	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}
	return nil
}
