package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], DefaultEnv()))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		fmt.Fprintf(env.Stderr, "md2html: %v\n", fmt.Errorf("%w: %w", ErrUsage, err))
		return exitCodeFor(ErrUsage)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	}
	if flags.common.quiet && flags.common.verbose {
		fmt.Fprintln(env.Stderr, "md2html: --quiet and --verbose are mutually exclusive")
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	logf := func(string, ...any) {}
	if flags.common.verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logf))
	defer undo()

	ctx, stop := notifyContext(ctx)
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "md2html: %v%s\n", err, hintFor(err, flags.common.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
