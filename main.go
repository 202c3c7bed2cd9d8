// git-mergepr merges the pull request for the current branch
// by squashing it into the target branch and pushing the result,
// so that the code host marks the pull request as merged.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/log/silog"
)

func main() {
	logger := silog.New(os.Stderr, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
			logger.Info("Cleaning up. Press Ctrl-C again to exit immediately.")
			cancel()
		case <-ctx.Done():
		}
	}()

	isTerminal := isatty.IsTerminal(os.Stdin.Fd())

	var cmd mainCmd
	parser, err := kong.New(&cmd,
		kong.Name("git-mergepr"),
		kong.Description("Merge the pull request for the current branch."),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(logger),
		kong.Vars{
			// Default to non-interactive mode if we're not in a terminal.
			"nonInteractive": strconv.FormatBool(!isTerminal),
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		logger.Fatalf("git-mergepr: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Fatalf("git-mergepr: %v", err)
	}
}
